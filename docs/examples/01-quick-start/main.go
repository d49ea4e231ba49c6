package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/kml/pkg/kml"
)

func main() {
	// Read a KML or KMZ file
	file, err := kml.Read("places.kml")
	if err != nil {
		log.Fatal(err)
	}

	// Print document info
	fmt.Printf("Top-level features: %d\n", len(file.Features()))
	fmt.Printf("Parse warnings: %d\n", file.Warnings())

	// Print layers
	for _, layer := range file.Layers() {
		fmt.Printf("  %d: %s (%d placemarks)\n",
			layer.Index, layer.Name, layer.Placemarks())
	}
}
