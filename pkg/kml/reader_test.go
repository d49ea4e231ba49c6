package kml

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const minimalKML = `<kml><Placemark><name>inside</name></Placemark></kml>`

func buildKMZ(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// TestReadKMLFile tests reading a plain .kml from disk.
func TestReadKMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.kml")
	if err := os.WriteFile(path, []byte(minimalKML), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Features()) != 1 {
		t.Fatalf("features = %d", len(f.Features()))
	}
}

// TestReadUnsupportedExtension tests the extension dispatch error.
func TestReadUnsupportedExtension(t *testing.T) {
	_, err := Read("places.gpx")
	var unsupported *ErrUnsupportedExtension
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected *ErrUnsupportedExtension, got %v", err)
	}
}

// TestParseKMZEntryPreference tests the primary-entry selection order.
func TestParseKMZEntryPreference(t *testing.T) {
	named := func(name string) string {
		return `<kml><Placemark><name>` + name + `</name></Placemark></kml>`
	}

	tests := []struct {
		name    string
		entries map[string]string
		want    string
	}{
		{
			name: "doc.kml wins",
			entries: map[string]string{
				"images/icon.png": "png",
				"other.kml":       named("other"),
				"doc.kml":         named("doc"),
			},
			want: "doc",
		},
		{
			name: "root.kml next",
			entries: map[string]string{
				"files/a.kml": named("nested"),
				"root.kml":    named("root"),
			},
			want: "root",
		},
		{
			name: "root-level beats nested",
			entries: map[string]string{
				"files/a.kml": named("nested"),
				"b.kml":       named("rootlevel"),
			},
			want: "rootlevel",
		},
		{
			name: "any kml as last resort",
			entries: map[string]string{
				"readme.txt":  "hi",
				"files/a.kml": named("nested"),
			},
			want: "nested",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildKMZ(t, tt.entries)
			f, err := ParseKMZ(bytes.NewReader(data), int64(len(data)))
			if err != nil {
				t.Fatal(err)
			}
			pm := f.Features()[0].(*Placemark)
			if got := derefString(pm.Name); got != tt.want {
				t.Errorf("picked entry %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParseKMZNoEntry tests the missing-entry error.
func TestParseKMZNoEntry(t *testing.T) {
	data := buildKMZ(t, map[string]string{"readme.txt": "hi"})
	_, err := ParseKMZ(bytes.NewReader(data), int64(len(data)))
	var noEntry *ErrNoKMLEntry
	if !errors.As(err, &noEntry) {
		t.Fatalf("expected *ErrNoKMLEntry, got %v", err)
	}
}

// TestReadKMZFile tests the .kmz path end to end, including ReadLazy.
func TestReadKMZFile(t *testing.T) {
	data := buildKMZ(t, map[string]string{"doc.kml": minimalKML})
	path := filepath.Join(t.TempDir(), "places.kmz")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Features()) != 1 {
		t.Fatalf("features = %d", len(f.Features()))
	}

	lazy, err := ReadLazy(path)
	if err != nil {
		t.Fatal(err)
	}
	layers := lazy.Layers()
	if len(layers) != 1 || layers[0].Placemarks() != 1 {
		t.Fatalf("lazy layers = %+v", layers)
	}
}
