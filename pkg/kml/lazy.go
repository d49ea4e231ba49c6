package kml

import (
	"sync"

	"github.com/beevik/etree"

	"go.uber.org/zap"
)

// LazyKMLFile answers layer and table queries directly from the XML tree,
// without materializing the typed object model. Typed values are built only
// for the geometry of each table row. For large documents where only one
// layer matters this skips most of the decoding work.
//
// A LazyKMLFile is safe for concurrent use; the one piece of mutable state,
// the memoized layer list, is guarded by a mutex.
type LazyKMLFile struct {
	doc *etree.Document
	reg *Registry
	log *zap.Logger

	mu     sync.Mutex
	layers []Layer
	done   bool
}

// NewLazyKMLFile wraps an already parsed XML document. The document must be
// rooted at <kml>; that is the only validation performed up front.
func NewLazyKMLFile(doc *etree.Document, opts ParseOptions) (*LazyKMLFile, error) {
	root := doc.Root()
	if root == nil {
		return nil, &ErrNoRoot{}
	}
	if root.Tag != "kml" {
		return nil, &ErrNoRoot{Tag: root.FullTag()}
	}
	reg := opts.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &LazyKMLFile{doc: doc, reg: reg, log: log}, nil
}

// Document returns the underlying XML document.
func (f *LazyKMLFile) Document() *etree.Document {
	return f.doc
}

// Layers discovers the document's layers, computing them on first call and
// reusing the result afterwards.
func (f *LazyKMLFile) Layers() []Layer {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.done {
		f.layers = f.discoverLayers()
		f.done = true
	}
	return f.layers
}

// SelectLayer resolves a query against the document's layers.
func (f *LazyKMLFile) SelectLayer(q LayerQuery) (*Layer, error) {
	return selectLayer(f.Layers(), q, f.log)
}

// discoverLayers mirrors KMLFile.Layers over raw XML elements.
func (f *LazyKMLFile) discoverLayers() []Layer {
	root := f.doc.Root()

	var feats []*etree.Element
	for _, c := range root.ChildElements() {
		if f.isFeatureTag(normalizeTag(c)) {
			feats = append(feats, c)
		}
	}

	candidates := feats
	parentName := ""
	recursed := false
	if len(feats) == 1 {
		tag := normalizeTag(feats[0])
		if tag == "Document" || tag == "Folder" {
			parentName = childText(feats[0], "name")
			recursed = true
			candidates = nil
			for _, c := range feats[0].ChildElements() {
				if f.isFeatureTag(normalizeTag(c)) {
					candidates = append(candidates, c)
				}
			}
		}
	}

	var layers []Layer
	var ungrouped []*etree.Element
	for _, c := range candidates {
		switch normalizeTag(c) {
		case "Document", "Folder":
			name := childText(c, "name")
			if name == "" {
				name = unnamedContainer
			}
			layers = append(layers, Layer{Name: name, node: c})
		case "Placemark":
			ungrouped = append(ungrouped, c)
		}
	}
	if len(ungrouped) > 0 {
		layers = append(layers, Layer{
			Name:           ungroupedName(recursed, parentName),
			ungroupedNodes: ungrouped,
		})
	}
	for i := range layers {
		layers[i].Index = i + 1
	}
	return layers
}

func (f *LazyKMLFile) isFeatureTag(tag string) bool {
	k, ok := f.reg.Lookup(tag)
	return ok && k.Category == CategoryFeature
}

// childText returns the text of el's first direct child with the given tag.
func childText(el *etree.Element, tag string) string {
	for _, c := range el.ChildElements() {
		if normalizeTag(c) == tag {
			return textContent(c)
		}
	}
	return ""
}
