package kml

import (
	"html"
	"strings"

	"github.com/beevik/etree"
)

// PlacemarkRow is one row of a placemark table: the stable shape downstream
// tabular and GIS consumers depend on.
type PlacemarkRow struct {
	Name        string
	Description string
	Geometry    Geometry
}

// TableOptions controls table construction.
type TableOptions struct {
	// Simplify replaces a MultiGeometry holding exactly one sub-geometry with
	// that sub-geometry.
	Simplify bool
}

// PlacemarkTable is the flattened placemark view of one layer. Rows follow
// document order.
type PlacemarkTable struct {
	rows []PlacemarkRow
}

// Rows returns the table's rows.
func (t *PlacemarkTable) Rows() []PlacemarkRow {
	return t.rows
}

// Len returns the number of rows.
func (t *PlacemarkTable) Len() int {
	return len(t.rows)
}

// Table selects a layer and flattens its placemarks into rows.
func (f *KMLFile) Table(q LayerQuery, opts TableOptions) (*PlacemarkTable, error) {
	l, err := f.SelectLayer(q)
	if err != nil {
		return nil, err
	}
	return &PlacemarkTable{rows: eagerRows(l, opts)}, nil
}

// Table selects a layer and builds its rows straight from the XML tree,
// decoding only each placemark's geometry subtree.
func (f *LazyKMLFile) Table(q LayerQuery, opts TableOptions) (*PlacemarkTable, error) {
	l, err := f.SelectLayer(q)
	if err != nil {
		return nil, err
	}
	d := newDecoder(f.reg, f.log)

	var rows []PlacemarkRow
	var visit func(el *etree.Element)
	visit = func(el *etree.Element) {
		switch normalizeTag(el) {
		case "Placemark":
			rows = append(rows, lazyRow(d, el, opts))
		case "Document", "Folder":
			for _, c := range el.ChildElements() {
				visit(c)
			}
		}
	}
	if l.node != nil {
		visit(l.node)
	}
	for _, el := range l.ungroupedNodes {
		visit(el)
	}
	return &PlacemarkTable{rows: rows}, nil
}

// eagerRows flattens a typed layer to rows via recursive traversal.
func eagerRows(l *Layer, opts TableOptions) []PlacemarkRow {
	var pms []*Placemark
	if l.Feature != nil {
		collectPlacemarks(l.Feature, &pms)
	} else {
		pms = l.ungrouped
	}
	rows := make([]PlacemarkRow, 0, len(pms))
	for _, p := range pms {
		rows = append(rows, PlacemarkRow{
			Name:        decodeEntities(derefString(p.Name)),
			Description: derefString(p.Description),
			Geometry:    simplifyGeometry(p.Geometry, opts.Simplify),
		})
	}
	return rows
}

func collectPlacemarks(f Feature, out *[]*Placemark) {
	switch f := f.(type) {
	case *Placemark:
		*out = append(*out, f)
	case *Document:
		for _, c := range f.Features {
			collectPlacemarks(c, out)
		}
	case *Folder:
		for _, c := range f.Features {
			collectPlacemarks(c, out)
		}
	}
}

// lazyRow builds one row from a raw <Placemark> element. Only the geometry
// child goes through the object builder.
func lazyRow(d *decoder, pm *etree.Element, opts TableOptions) PlacemarkRow {
	var row PlacemarkRow
	for _, c := range pm.ChildElements() {
		tag := normalizeTag(c)
		switch tag {
		case "name":
			row.Name = decodeEntities(textContent(c))
		case "description":
			row.Description = textContent(c)
		default:
			if row.Geometry != nil {
				continue
			}
			if k, ok := d.reg.Lookup(tag); ok && k.Category == CategoryGeometry {
				if g, ok := d.build(k, c).(Geometry); ok {
					row.Geometry = g
				}
			}
		}
	}
	row.Geometry = simplifyGeometry(row.Geometry, opts.Simplify)
	return row
}

// decodeEntities resolves HTML named entities. The '&' guard skips the
// decoder on the common entity-free case.
func decodeEntities(s string) string {
	if strings.ContainsRune(s, '&') {
		return html.UnescapeString(s)
	}
	return s
}

// simplifyGeometry unwraps single-part MultiGeometry values when enabled.
func simplifyGeometry(g Geometry, on bool) Geometry {
	if !on {
		return g
	}
	for {
		mg, ok := g.(*MultiGeometry)
		if !ok || len(mg.Geometries) != 1 {
			return g
		}
		g = mg.Geometries[0]
	}
}
