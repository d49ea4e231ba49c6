package kml

import (
	"errors"
	"reflect"
	"testing"

	"github.com/beevik/etree"
)

func mustParseLazy(t *testing.T, doc string) *LazyKMLFile {
	t.Helper()
	tree := etree.NewDocument()
	if err := tree.ReadFromString(doc); err != nil {
		t.Fatalf("ReadFromString: %v", err)
	}
	f, err := NewLazyKMLFile(tree, DefaultParseOptions())
	if err != nil {
		t.Fatalf("NewLazyKMLFile: %v", err)
	}
	return f
}

// TestLazyLayersMatchEager tests that the lazy resolver produces the same
// layer descriptors as the eager one.
func TestLazyLayersMatchEager(t *testing.T) {
	docs := []string{
		layeredDoc,
		`<kml><Folder><Placemark/></Folder><Placemark/><Placemark/></kml>`,
		`<kml><Document><Placemark/></Document></kml>`,
		`<kml><Document><Folder/></Document></kml>`,
	}
	for _, doc := range docs {
		eager := mustParse(t, doc).Layers()
		lazy := mustParseLazy(t, doc).Layers()

		if len(eager) != len(lazy) {
			t.Fatalf("layer counts differ: eager %d, lazy %d\n%s", len(eager), len(lazy), doc)
		}
		for i := range eager {
			if eager[i].Index != lazy[i].Index || eager[i].Name != lazy[i].Name {
				t.Errorf("layer %d: eager {%d %q}, lazy {%d %q}",
					i, eager[i].Index, eager[i].Name, lazy[i].Index, lazy[i].Name)
			}
			if eager[i].Placemarks() != lazy[i].Placemarks() {
				t.Errorf("layer %d: placemarks eager %d, lazy %d",
					i, eager[i].Placemarks(), lazy[i].Placemarks())
			}
		}
	}
}

// TestLazyLayersMemoized tests that layer discovery runs once per file.
func TestLazyLayersMemoized(t *testing.T) {
	f := mustParseLazy(t, layeredDoc)
	first := f.Layers()
	second := f.Layers()
	if len(first) == 0 || &first[0] != &second[0] {
		t.Error("expected the memoized slice on repeat calls")
	}
}

// TestLazyNoRoot tests root validation at construction time.
func TestLazyNoRoot(t *testing.T) {
	tree := etree.NewDocument()
	if err := tree.ReadFromString(`<gpx/>`); err != nil {
		t.Fatal(err)
	}
	_, err := NewLazyKMLFile(tree, DefaultParseOptions())
	var noRoot *ErrNoRoot
	if !errors.As(err, &noRoot) {
		t.Fatalf("expected *ErrNoRoot, got %v", err)
	}
}

// TestLazyTableMatchesEager tests the two table paths against each other.
func TestLazyTableMatchesEager(t *testing.T) {
	doc := `<kml><Document><name>Trip</name>
	  <Folder><name>Day 1</name>
	    <Placemark><name>a &amp; b</name><description>first</description>
	      <Point><coordinates>1,2</coordinates></Point>
	    </Placemark>
	    <Placemark>
	      <MultiGeometry>
	        <LineString><coordinates>0,0 1,1</coordinates></LineString>
	      </MultiGeometry>
	    </Placemark>
	  </Folder>
	</Document></kml>`

	for _, simplify := range []bool{false, true} {
		opts := TableOptions{Simplify: simplify}
		eager, err := mustParse(t, doc).Table(LayerQuery{Index: 1}, opts)
		if err != nil {
			t.Fatal(err)
		}
		lazy, err := mustParseLazy(t, doc).Table(LayerQuery{Index: 1}, opts)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(eager.Rows(), lazy.Rows()) {
			t.Errorf("simplify=%v: rows differ\neager: %+v\nlazy:  %+v",
				simplify, eager.Rows(), lazy.Rows())
		}
	}
}
