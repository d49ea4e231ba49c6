package kml

import (
	"testing"
)

// TestRegistryLookup tests tag resolution, including aliases and the gx
// namespace.
func TestRegistryLookup(t *testing.T) {
	r := DefaultRegistry()
	tests := []struct {
		tag  string
		want string
	}{
		{"Placemark", "Placemark"},
		{"gx_Track", "gx_Track"},
		{"Pair", "Pair"},
		{"StyleMapPair", "Pair"},
		{"Url", "Link"},
		{"overlayXY", "hotSpot"},
		{"screenXY", "hotSpot"},
		{"gx_TimeStamp", "TimeStamp"},
		{"linkSnippet", "Snippet"},
		{"atom_author", "atom_author"},
	}
	for _, tt := range tests {
		k, ok := r.Lookup(tt.tag)
		if !ok {
			t.Errorf("Lookup(%q) missed", tt.tag)
			continue
		}
		if k.Name != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.tag, k.Name, tt.want)
		}
	}
	if _, ok := r.Lookup("outerBoundaryIs"); ok {
		t.Error("boundary wrappers must not be registered kinds")
	}
}

// TestRegistryLookupSlow tests the case-insensitive, prefix-stripped
// fallback.
func TestRegistryLookupSlow(t *testing.T) {
	r := DefaultRegistry()
	tests := []struct {
		tag  string
		want string
	}{
		{"placemark", "Placemark"},
		{"POLYGON", "Polygon"},
		{"kml_Placemark", "Placemark"},
	}
	for _, tt := range tests {
		k, ok := r.LookupSlow(tt.tag)
		if !ok || k.Name != tt.want {
			t.Errorf("LookupSlow(%q) = %v, want %q", tt.tag, k, tt.want)
		}
	}
	if _, ok := r.LookupSlow("definitelyNotKML"); ok {
		t.Error("LookupSlow matched garbage")
	}
}

// TestRegistryFields tests descriptor details the decoder depends on.
func TestRegistryFields(t *testing.T) {
	r := DefaultRegistry()

	pm, _ := r.Lookup("Placemark")
	if f, ok := pm.FieldByName("id"); !ok || !f.Attr {
		t.Error("Placemark id must be an attribute field")
	}
	if f, ok := pm.FieldByName("name"); !ok || f.Kind != fieldString || !f.Optional {
		t.Error("Placemark name must be an optional string field")
	}

	ls, _ := r.Lookup("LineString")
	if f, ok := ls.FieldByName("gx_altitudeMode"); !ok || f.Kind != fieldEnum {
		t.Error("gx_altitudeMode alias missing on LineString")
	}

	sn, _ := r.Lookup("Snippet")
	if _, ok := sn.ContentField(); !ok {
		t.Error("Snippet must capture whole text")
	}
	if _, ok := pm.ContentField(); ok {
		t.Error("Placemark must not capture whole text")
	}

	tr, _ := r.Lookup("gx_Track")
	if f, ok := tr.FieldByName("when"); !ok || f.Kind != fieldTimeList {
		t.Error("gx:Track when must be a time list")
	}
	if f, ok := tr.FieldByName("gx_coord"); !ok || f.Kind != fieldCoordList {
		t.Error("gx:Track gx_coord must be a coordinate list")
	}

	pt, _ := r.Lookup("Point")
	if f, ok := pt.FieldByName("coordinates"); !ok || f.Kind != fieldCoord {
		t.Error("Point coordinates must be scalar")
	}
}

// TestRegistryKindOf tests instance-to-descriptor resolution.
func TestRegistryKindOf(t *testing.T) {
	r := DefaultRegistry()
	k, ok := r.KindOf(&GxTour{})
	if !ok || k.XMLTag != "gx:Tour" {
		t.Errorf("KindOf(GxTour) = %v", k)
	}
	if _, ok := r.KindOf(nil); ok {
		t.Error("KindOf(nil) matched")
	}
}

// TestRegistryCategories tests the category listings.
func TestRegistryCategories(t *testing.T) {
	r := DefaultRegistry()
	if got := len(r.KindsInCategory(CategoryFeature)); got != 8 {
		t.Errorf("feature kinds = %d, want 8", got)
	}
	if got := len(r.KindsInCategory(CategoryGeometry)); got != 8 {
		t.Errorf("geometry kinds = %d, want 8", got)
	}
	for _, k := range r.KindsInCategory(CategoryGeometry) {
		if _, ok := k.New().(Geometry); !ok {
			t.Errorf("%s registered as geometry but does not implement it", k.Name)
		}
	}
}
