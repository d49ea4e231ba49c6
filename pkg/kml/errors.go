package kml

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoLayers indicates layer selection against a document that has no
// containers and no top-level placemarks.
var ErrNoLayers = errors.New("document contains no layers")

// ErrNoRoot indicates the document has no <kml> root element.
type ErrNoRoot struct {
	Tag string // root tag actually found, empty when the document is empty
}

func (e *ErrNoRoot) Error() string {
	if e.Tag == "" {
		return "no <kml> root element found (document has no root)"
	}
	return fmt.Sprintf("no <kml> root element found (root is <%s>)", e.Tag)
}

// ErrUnsupportedExtension indicates a file extension this package cannot read.
type ErrUnsupportedExtension struct {
	Path string
}

func (e *ErrUnsupportedExtension) Error() string {
	return fmt.Sprintf("unsupported file extension %q: expected .kml or .kmz", e.Path)
}

// ErrNoKMLEntry indicates a KMZ archive with no .kml entry inside.
type ErrNoKMLEntry struct {
	Archive string
}

func (e *ErrNoKMLEntry) Error() string {
	return fmt.Sprintf("no .kml entry found in KMZ archive %q (looked for doc.kml, root.kml, then any .kml)", e.Archive)
}

// ErrUnknownEnumValue indicates a value outside an enumeration's fixed set.
type ErrUnknownEnumValue struct {
	Enum    string
	Value   string
	Allowed []string
}

func (e *ErrUnknownEnumValue) Error() string {
	return fmt.Sprintf("invalid %s value %q (allowed: %s)",
		e.Enum, e.Value, strings.Join(e.Allowed, ", "))
}

// ErrLayerNotFound indicates layer selection by a name no layer carries.
type ErrLayerNotFound struct {
	Name      string
	Available []string
}

func (e *ErrLayerNotFound) Error() string {
	return fmt.Sprintf("no layer named %q; available layers: %q", e.Name, e.Available)
}

// LayerInfo is one line of an ErrLayerIndex listing.
type LayerInfo struct {
	Index      int
	Name       string
	Placemarks int // recursive count, including placemarks in nested containers
}

// ErrLayerIndex indicates layer selection with an out-of-range 1-based index.
type ErrLayerIndex struct {
	Index  int
	Layers []LayerInfo
}

func (e *ErrLayerIndex) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "layer index %d out of range; available layers:", e.Index)
	for _, l := range e.Layers {
		fmt.Fprintf(&b, "\n  %d: %s (%d placemarks)", l.Index, l.Name, l.Placemarks)
	}
	return b.String()
}
