package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/kml/pkg/kml"
)

func main() {
	file, err := kml.Read("world-heritage.kmz")
	if err != nil {
		log.Fatal(err)
	}

	// Build an R-tree over every placemark geometry
	idx := kml.NewSpatialIndex(file)
	fmt.Printf("Indexed %d placemarks\n", idx.Count())

	// Query a viewport: O(log N) instead of scanning every placemark
	viewport := kml.Bounds{
		MinLon: 2.0, MaxLon: 3.0,
		MinLat: 48.5, MaxLat: 49.5,
	}
	for _, pm := range idx.Search(viewport) {
		name := ""
		if pm.Name != nil {
			name = *pm.Name
		}
		fmt.Println(name)
	}
}
