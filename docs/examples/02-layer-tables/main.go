package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/kml/pkg/kml"
)

func main() {
	path := "trip.kml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// Lazy loading skips typed-tree construction; only the geometry of each
	// table row is decoded. For large files this is substantially faster
	// when a single layer is all you need.
	file, err := kml.ReadLazy(path)
	if err != nil {
		log.Fatal(err)
	}

	// Select a layer by name, then flatten its placemarks
	table, err := file.Table(kml.LayerQuery{Name: "Day 1"}, kml.TableOptions{
		Simplify: true, // unwrap single-part MultiGeometry
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, row := range table.Rows() {
		fmt.Printf("%-30s %T\n", row.Name, row.Geometry)
	}
}
