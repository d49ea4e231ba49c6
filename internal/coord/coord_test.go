package coord

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "1.5", []string{"1.5"}},
		{"comma separated", "1,2,3", []string{"1", "2", "3"}},
		{"space separated", "1 2 3", []string{"1", "2", "3"}},
		{"mixed delimiters", "1,2 3,4", []string{"1", "2", "3", "4"}},
		{"irregular whitespace", "  1.5 , 2.5 \n 3.5 , 4.5  ", []string{"1.5", "2.5", "3.5", "4.5"}},
		{"delimiters only", " , \t\r\n ,, ", nil},
		{"zero altitude erratum", "1,2,0 3,4,0", []string{"1", "2", "0", "3", "4", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	vals, bad := Parse("1,2.5,-3e2")
	if want := []float64{1, 2.5, -300}; !reflect.DeepEqual(vals, want) {
		t.Errorf("vals = %v, want %v", vals, want)
	}
	if len(bad) != 0 {
		t.Errorf("bad = %v, want none", bad)
	}

	vals, bad = Parse("1,abc,2")
	if want := []float64{1, 2}; !reflect.DeepEqual(vals, want) {
		t.Errorf("vals = %v, want %v", vals, want)
	}
	if want := []string{"abc"}; !reflect.DeepEqual(bad, want) {
		t.Errorf("bad = %v, want %v", bad, want)
	}
}

func TestGroup(t *testing.T) {
	tests := []struct {
		name   string
		in     []float64
		want   [][]float64
		status GroupStatus
	}{
		{"empty", nil, nil, GroupEmpty},
		{"one 2d", []float64{1, 2}, [][]float64{{1, 2}}, GroupOK},
		{"one 3d", []float64{1, 2, 3}, [][]float64{{1, 2, 3}}, GroupOK},
		{"two 2d", []float64{1, 2, 3, 4}, [][]float64{{1, 2}, {3, 4}}, GroupOK},
		{"two 3d", []float64{1, 2, 3, 4, 5, 6}, [][]float64{{1, 2, 3}, {4, 5, 6}}, GroupOK},
		{"malformed count", []float64{1, 2, 3, 4, 5}, nil, GroupMalformed},
		{"single value", []float64{1}, nil, GroupMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, status := Group(tt.in)
			if status != tt.status {
				t.Fatalf("Group(%v) status = %v, want %v", tt.in, status, tt.status)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Group(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// A count of 6 divides by both 2 and 3; the 3D interpretation must win.
func TestGroupTieBreakPrefers3D(t *testing.T) {
	got, status := Group([]float64{1, 2, 3, 4, 5, 6})
	if status != GroupOK {
		t.Fatalf("status = %v, want GroupOK", status)
	}
	if len(got) != 2 || len(got[0]) != 3 {
		t.Errorf("got %v, want two 3D tuples", got)
	}
}
