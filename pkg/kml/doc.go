// Package kml reads and writes Keyhole Markup Language documents.
//
// The package maps KML elements onto a typed object model: Features,
// Geometries, StyleSelectors and the rest of the OGC KML 2.2 hierarchy plus
// the common Google extensions (gx: namespace). Parsing is tolerant: an
// unrecognized tag, a bad enum value or a malformed coordinate list is
// logged and skipped, never fatal; only a missing <kml> root aborts.
//
// Example:
//
//	file, err := kml.Read("places.kml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	table, err := file.Table(kml.LayerQuery{}, kml.TableOptions{Simplify: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, row := range table.Rows() {
//	    fmt.Println(row.Name, row.Geometry)
//	}
//
// KMZ archives are read transparently; Read dispatches on the file
// extension and locates the archive's primary KML entry.
package kml
