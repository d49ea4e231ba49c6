package kml

import (
	"fmt"
	"os"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// Placeholder display names for layers that have no usable <name>.
const (
	unnamedContainer   = "<Unnamed Container>"
	ungroupedLayerName = "<Ungrouped Top-Level Placemarks>"
)

// Layer is one selectable layer of a document: a top-level Document or
// Folder, or the synthesized layer of placemarks sitting outside any
// container. A Layer holds either a typed source (eager files) or a raw XML
// source (lazy files), never both.
type Layer struct {
	// Index is the 1-based position in discovery order: containers first,
	// then the ungrouped-placemarks layer last.
	Index int
	// Name is the display name used for selection by name.
	Name string

	// Feature is the layer's container in the typed tree, nil for the
	// synthesized ungrouped layer and for lazy layers.
	Feature Feature

	ungrouped []*Placemark

	node           *etree.Element
	ungroupedNodes []*etree.Element
}

// Placemarks returns the layer's recursive placemark count, including
// placemarks nested in sub-containers.
func (l *Layer) Placemarks() int {
	switch {
	case l.Feature != nil:
		return countPlacemarks(l.Feature)
	case l.node != nil:
		return countPlacemarkNodes(l.node)
	case l.ungroupedNodes != nil:
		n := 0
		for _, el := range l.ungroupedNodes {
			n += countPlacemarkNodes(el)
		}
		return n
	default:
		return len(l.ungrouped)
	}
}

// LayerQuery selects a layer. The zero value selects "whatever is there":
// the sole layer, or the first of several with a warning. Name takes
// precedence over Index when both are set.
type LayerQuery struct {
	// Name selects by exact display-name match.
	Name string
	// Index selects by 1-based position.
	Index int
}

// Layers discovers the document's layers. The computation walks the typed
// tree on every call; the tree is already in memory, so there is nothing
// worth caching.
func (f *KMLFile) Layers() []Layer {
	feats := f.Features()
	candidates, parentName, recursed := layerCandidates(feats)

	var layers []Layer
	var ungrouped []*Placemark
	for _, c := range candidates {
		switch c := c.(type) {
		case *Document:
			layers = append(layers, Layer{Name: containerName(c.Name), Feature: c})
		case *Folder:
			layers = append(layers, Layer{Name: containerName(c.Name), Feature: c})
		case *Placemark:
			ungrouped = append(ungrouped, c)
		}
	}
	if len(ungrouped) > 0 {
		layers = append(layers, Layer{
			Name:      ungroupedName(recursed, parentName),
			ungrouped: ungrouped,
		})
	}
	for i := range layers {
		layers[i].Index = i + 1
	}
	return layers
}

// SelectLayer resolves a query against the document's layers.
func (f *KMLFile) SelectLayer(q LayerQuery) (*Layer, error) {
	return selectLayer(f.Layers(), q, f.log)
}

// layerCandidates picks the elements layers are discovered among. A document
// whose only feature is a container is unwrapped one level, so its children
// become the candidates.
func layerCandidates(feats []Feature) (candidates []Feature, parentName string, recursed bool) {
	if len(feats) == 1 {
		switch c := feats[0].(type) {
		case *Document:
			return c.Features, derefString(c.Name), true
		case *Folder:
			return c.Features, derefString(c.Name), true
		}
	}
	return feats, "", false
}

func containerName(name *string) string {
	if name == nil || *name == "" {
		return unnamedContainer
	}
	return *name
}

func ungroupedName(recursed bool, parentName string) string {
	if recursed && parentName != "" {
		return fmt.Sprintf("<Placemarks in %s>", parentName)
	}
	return ungroupedLayerName
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// selectLayer is the selection contract shared by the eager and lazy paths.
func selectLayer(layers []Layer, q LayerQuery, log *zap.Logger) (*Layer, error) {
	if len(layers) == 0 {
		return nil, ErrNoLayers
	}
	if log == nil {
		log = zap.NewNop()
	}

	switch {
	case q.Name != "":
		for i := range layers {
			if layers[i].Name == q.Name {
				return &layers[i], nil
			}
		}
		names := make([]string, len(layers))
		for i := range layers {
			names[i] = layers[i].Name
		}
		return nil, &ErrLayerNotFound{Name: q.Name, Available: names}

	case q.Index != 0:
		if q.Index < 1 || q.Index > len(layers) {
			return nil, &ErrLayerIndex{Index: q.Index, Layers: layerInfos(layers)}
		}
		return &layers[q.Index-1], nil

	default:
		if len(layers) == 1 {
			return &layers[0], nil
		}
		if stdinIsTerminal() {
			return promptLayer(layers)
		}
		log.Warn("multiple layers found, defaulting to the first; select one explicitly with LayerQuery{Name: ...} or LayerQuery{Index: ...}",
			zap.Int("layers", len(layers)), zap.String("selected", layers[0].Name))
		return &layers[0], nil
	}
}

func layerInfos(layers []Layer) []LayerInfo {
	infos := make([]LayerInfo, len(layers))
	for i := range layers {
		infos[i] = LayerInfo{
			Index:      layers[i].Index,
			Name:       layers[i].Name,
			Placemarks: layers[i].Placemarks(),
		}
	}
	return infos
}

// promptLayer asks an interactive user to pick among several layers.
func promptLayer(layers []Layer) (*Layer, error) {
	fmt.Fprintln(os.Stderr, "Multiple layers found:")
	for i := range layers {
		fmt.Fprintf(os.Stderr, "  %d: %s (%d placemarks)\n",
			layers[i].Index, layers[i].Name, layers[i].Placemarks())
	}
	fmt.Fprint(os.Stderr, "Select layer number: ")
	var n int
	if _, err := fmt.Fscanln(os.Stdin, &n); err != nil {
		return nil, err
	}
	if n < 1 || n > len(layers) {
		return nil, &ErrLayerIndex{Index: n, Layers: layerInfos(layers)}
	}
	return &layers[n-1], nil
}

// stdinIsTerminal is a variable so tests can force the non-interactive path.
var stdinIsTerminal = func() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// countPlacemarks counts placemarks in a feature subtree.
func countPlacemarks(f Feature) int {
	switch f := f.(type) {
	case *Placemark:
		return 1
	case *Document:
		n := 0
		for _, c := range f.Features {
			n += countPlacemarks(c)
		}
		return n
	case *Folder:
		n := 0
		for _, c := range f.Features {
			n += countPlacemarks(c)
		}
		return n
	}
	return 0
}

// countPlacemarkNodes counts <Placemark> elements in a raw XML subtree.
func countPlacemarkNodes(el *etree.Element) int {
	if normalizeTag(el) == "Placemark" {
		return 1
	}
	n := 0
	for _, c := range el.ChildElements() {
		n += countPlacemarkNodes(c)
	}
	return n
}
