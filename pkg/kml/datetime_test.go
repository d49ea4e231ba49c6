package kml

import (
	"testing"
	"time"
)

// TestParseTimeValue tests the layout ladder from full timestamps down to
// bare years, plus the raw fallback.
func TestParseTimeValue(t *testing.T) {
	tests := []struct {
		raw        string
		wantLayout string
		wantYear   int
		wantMonth  time.Month
		wantOffset int
	}{
		{"1997-07-16T07:30:15+03:00", "2006-01-02T15:04:05Z07:00", 1997, time.July, 3 * 3600},
		{"2010-05-28T02:02:09Z", "2006-01-02T15:04:05Z07:00", 2010, time.May, 0},
		{"1997-07-16T07:30:15", "2006-01-02T15:04:05", 1997, time.July, 0},
		{"1997-07-16", "2006-01-02", 1997, time.July, 0},
		{"1997-07", "2006-01", 1997, time.July, 0},
		{"1997", "2006", 1997, time.January, 0},
	}

	for _, tt := range tests {
		tv := ParseTimeValue(tt.raw)
		if !tv.IsParsed() {
			t.Errorf("%q: not parsed", tt.raw)
			continue
		}
		if tv.Layout != tt.wantLayout {
			t.Errorf("%q: layout = %q, want %q", tt.raw, tv.Layout, tt.wantLayout)
		}
		if tv.Time.Year() != tt.wantYear || tv.Time.Month() != tt.wantMonth {
			t.Errorf("%q: time = %v", tt.raw, tv.Time)
		}
		if _, offset := tv.Time.Zone(); offset != tt.wantOffset {
			t.Errorf("%q: offset = %d, want %d", tt.raw, offset, tt.wantOffset)
		}
	}
}

// TestParseTimeValueFallback tests that unparseable input keeps the raw text.
func TestParseTimeValueFallback(t *testing.T) {
	for _, raw := range []string{"sometime in spring", "1997-13-40", ""} {
		tv := ParseTimeValue(raw)
		if tv.IsParsed() {
			t.Errorf("%q: unexpectedly parsed as %v", raw, tv.Time)
		}
		if tv.Raw != raw {
			t.Errorf("%q: raw = %q", raw, tv.Raw)
		}
		if tv.String() != raw {
			t.Errorf("%q: String() = %q", raw, tv.String())
		}
	}
}

// TestTimeValueString tests that String reproduces the input precision.
func TestTimeValueString(t *testing.T) {
	for _, raw := range []string{
		"1997-07-16T07:30:15+03:00",
		"2010-05-28T02:02:09Z",
		"1997-07-16",
		"1997-07",
		"1876",
	} {
		if got := ParseTimeValue(raw).String(); got != raw {
			t.Errorf("String() = %q, want %q", got, raw)
		}
	}
}

// TestFixedZoneCache tests that equal offsets share one location object.
func TestFixedZoneCache(t *testing.T) {
	a := ParseTimeValue("1997-07-16T07:30:15+05:30")
	b := ParseTimeValue("2001-01-01T00:00:00+05:30")
	if a.Time.Location() != b.Time.Location() {
		t.Error("expected the cached location for a repeated offset")
	}
	if a.Time.Location().String() != "UTC+05:30" {
		t.Errorf("location name = %q", a.Time.Location())
	}
}
