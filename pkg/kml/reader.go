package kml

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// ParseOptions controls parsing behavior.
type ParseOptions struct {
	// Logger receives recoverable parse warnings. Nil disables logging;
	// warnings are still counted on the resulting file either way.
	Logger *zap.Logger
	// Registry overrides the kind registry. Nil uses DefaultRegistry.
	Registry *Registry
}

// DefaultParseOptions returns the standard parsing configuration.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{}
}

// Parse reads a KML document from r and builds the typed tree.
func Parse(r io.Reader) (*KMLFile, error) {
	return ParseWithOptions(r, DefaultParseOptions())
}

// ParseWithOptions reads a KML document from r with explicit options.
func ParseWithOptions(r io.Reader, opts ParseOptions) (*KMLFile, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	return ParseDocument(doc, opts)
}

// ParseString parses a KML document held in memory.
func ParseString(s string) (*KMLFile, error) {
	return Parse(strings.NewReader(s))
}

// ParseDocument builds the typed tree from an already parsed XML document.
// The document must be rooted at <kml>.
func ParseDocument(doc *etree.Document, opts ParseOptions) (*KMLFile, error) {
	d := newDecoder(opts.Registry, opts.Logger)
	return d.document(doc)
}

// Read loads a file by path, dispatching on its extension: .kml parses
// directly, .kmz locates and parses the archive's primary KML entry. Any
// other extension is an error.
func Read(path string) (*KMLFile, error) {
	return ReadWithOptions(path, DefaultParseOptions())
}

// ReadWithOptions loads a file by path with explicit options.
func ReadWithOptions(path string, opts ParseOptions) (*KMLFile, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".kml":
		in, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		return ParseWithOptions(in, opts)
	case ".kmz":
		zr, err := zip.OpenReader(path)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return parseKMZ(&zr.Reader, path, opts)
	default:
		return nil, &ErrUnsupportedExtension{Path: path}
	}
}

// ParseKMZ parses the primary KML entry of an in-memory KMZ archive.
func ParseKMZ(r io.ReaderAt, size int64) (*KMLFile, error) {
	return ParseKMZWithOptions(r, size, DefaultParseOptions())
}

// ParseKMZWithOptions parses an in-memory KMZ archive with explicit options.
func ParseKMZWithOptions(r io.ReaderAt, size int64, opts ParseOptions) (*KMLFile, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	return parseKMZ(zr, "", opts)
}

func parseKMZ(zr *zip.Reader, name string, opts ParseOptions) (*KMLFile, error) {
	entry := primaryKMLEntry(zr)
	if entry == nil {
		return nil, &ErrNoKMLEntry{Archive: name}
	}
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ParseWithOptions(rc, opts)
}

// primaryKMLEntry picks the KML entry of a KMZ archive: doc.kml first, then
// root.kml, then the first root-level .kml, then the first .kml anywhere.
func primaryKMLEntry(zr *zip.Reader) *zip.File {
	var rootNamed, rootLevel, anywhere *zip.File
	for _, f := range zr.File {
		lower := strings.ToLower(f.Name)
		if !strings.HasSuffix(lower, ".kml") {
			continue
		}
		switch {
		case lower == "doc.kml":
			return f
		case lower == "root.kml" && rootNamed == nil:
			rootNamed = f
		case !strings.Contains(f.Name, "/") && rootLevel == nil:
			rootLevel = f
		case anywhere == nil:
			anywhere = f
		}
	}
	if rootNamed != nil {
		return rootNamed
	}
	if rootLevel != nil {
		return rootLevel
	}
	return anywhere
}

// ReadLazy loads a file by path without materializing the typed tree. Layer
// discovery and table construction then work directly on the XML tree,
// building typed values only for the geometries a table row needs.
func ReadLazy(path string) (*LazyKMLFile, error) {
	return ReadLazyWithOptions(path, DefaultParseOptions())
}

// ReadLazyWithOptions loads a lazy file with explicit options.
func ReadLazyWithOptions(path string, opts ParseOptions) (*LazyKMLFile, error) {
	doc := etree.NewDocument()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".kml":
		if err := doc.ReadFromFile(path); err != nil {
			return nil, err
		}
	case ".kmz":
		zr, err := zip.OpenReader(path)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		entry := primaryKMLEntry(&zr.Reader)
		if entry == nil {
			return nil, &ErrNoKMLEntry{Archive: path}
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		if _, err := doc.ReadFrom(rc); err != nil {
			return nil, err
		}
	default:
		return nil, &ErrUnsupportedExtension{Path: path}
	}
	return NewLazyKMLFile(doc, opts)
}
