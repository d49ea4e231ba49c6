package kml

import (
	"errors"
	"testing"
)

const layeredDoc = `<kml><Document><name>Trip</name>
  <Folder><name>Day 1</name>
    <Placemark><name>a</name></Placemark>
    <Folder><Placemark><name>b</name></Placemark></Folder>
  </Folder>
  <Folder><name>Day 2</name>
    <Placemark><name>c</name></Placemark>
  </Folder>
  <Placemark><name>loose</name></Placemark>
</Document></kml>`

// TestLayers tests discovery: unwrap the sole top-level container, one layer
// per sub-container, ungrouped placemarks last.
func TestLayers(t *testing.T) {
	f := mustParse(t, layeredDoc)
	layers := f.Layers()

	want := []struct {
		index      int
		name       string
		placemarks int
	}{
		{1, "Day 1", 2},
		{2, "Day 2", 1},
		{3, "<Placemarks in Trip>", 1},
	}
	if len(layers) != len(want) {
		t.Fatalf("layers = %d, want %d", len(layers), len(want))
	}
	for i, w := range want {
		l := layers[i]
		if l.Index != w.index || l.Name != w.name || l.Placemarks() != w.placemarks {
			t.Errorf("layer %d = {%d %q %d}, want {%d %q %d}",
				i, l.Index, l.Name, l.Placemarks(), w.index, w.name, w.placemarks)
		}
	}
}

// TestLayersTopLevel tests discovery without a wrapping container.
func TestLayersTopLevel(t *testing.T) {
	f := mustParse(t, `<kml>
	  <Folder><Placemark/></Folder>
	  <Placemark/>
	  <Placemark/>
	</kml>`)
	layers := f.Layers()
	if len(layers) != 2 {
		t.Fatalf("layers = %d, want 2", len(layers))
	}
	if layers[0].Name != unnamedContainer {
		t.Errorf("layer 1 name = %q", layers[0].Name)
	}
	if layers[1].Name != ungroupedLayerName || layers[1].Placemarks() != 2 {
		t.Errorf("layer 2 = %q (%d placemarks)", layers[1].Name, layers[1].Placemarks())
	}
}

// TestLayersSinglePlacemarkDoc tests that a document holding only placemarks
// yields exactly the synthesized layer.
func TestLayersSinglePlacemarkDoc(t *testing.T) {
	f := mustParse(t, `<kml><Document>
	  <Placemark><name>only</name></Placemark>
	</Document></kml>`)
	layers := f.Layers()
	if len(layers) != 1 {
		t.Fatalf("layers = %d, want 1", len(layers))
	}
	if layers[0].Name != ungroupedLayerName {
		t.Errorf("name = %q", layers[0].Name)
	}
}

// TestSelectLayer tests the selection contract.
func TestSelectLayer(t *testing.T) {
	f := mustParse(t, layeredDoc)

	l, err := f.SelectLayer(LayerQuery{Name: "Day 2"})
	if err != nil {
		t.Fatal(err)
	}
	if l.Index != 2 {
		t.Errorf("by name: index = %d, want 2", l.Index)
	}

	l, err = f.SelectLayer(LayerQuery{Index: 3})
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "<Placemarks in Trip>" {
		t.Errorf("by index: name = %q", l.Name)
	}

	_, err = f.SelectLayer(LayerQuery{Name: "Day 3"})
	var notFound *ErrLayerNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *ErrLayerNotFound, got %v", err)
	}
	if len(notFound.Available) != 3 {
		t.Errorf("available = %v", notFound.Available)
	}

	_, err = f.SelectLayer(LayerQuery{Index: 9})
	var badIndex *ErrLayerIndex
	if !errors.As(err, &badIndex) {
		t.Fatalf("expected *ErrLayerIndex, got %v", err)
	}
	if len(badIndex.Layers) != 3 || badIndex.Layers[0].Placemarks != 2 {
		t.Errorf("listing = %+v", badIndex.Layers)
	}
}

// TestSelectLayerDefault tests zero-query selection: the sole layer comes
// back directly, several layers fall back to the first outside a terminal.
func TestSelectLayerDefault(t *testing.T) {
	f := mustParse(t, `<kml><Document>
		<Folder><name>only</name><Placemark/></Folder>
	</Document></kml>`)
	l, err := f.SelectLayer(LayerQuery{})
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "only" {
		t.Errorf("name = %q", l.Name)
	}

	orig := stdinIsTerminal
	stdinIsTerminal = func() bool { return false }
	defer func() { stdinIsTerminal = orig }()

	f = mustParse(t, layeredDoc)
	l, err = f.SelectLayer(LayerQuery{})
	if err != nil {
		t.Fatal(err)
	}
	if l.Index != 1 {
		t.Errorf("index = %d, want first layer", l.Index)
	}
}

// TestSelectLayerEmpty tests selection against a layerless document.
func TestSelectLayerEmpty(t *testing.T) {
	f := mustParse(t, `<kml/>`)
	if _, err := f.SelectLayer(LayerQuery{}); !errors.Is(err, ErrNoLayers) {
		t.Fatalf("expected ErrNoLayers, got %v", err)
	}
}
