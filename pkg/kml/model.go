package kml

// Element is implemented by every kind in the KML object model.
//
// The concrete set of kinds is closed: it is exactly the types registered in
// the Registry. Code that needs "every kind of category C" should consult
// Registry.KindsInCategory rather than enumerate types by hand.
type Element interface {
	isElement()
}

// Feature is the category interface for Document, Folder, Placemark,
// NetworkLink, GroundOverlay, ScreenOverlay, PhotoOverlay and GxTour.
type Feature interface {
	Element
	isFeature()
}

// Geometry is the category interface for Point, LineString, LinearRing,
// Polygon, MultiGeometry, Model, GxTrack and GxMultiTrack.
type Geometry interface {
	Element
	isGeometry()
}

// StyleSelector is the category interface for Style and StyleMap.
type StyleSelector interface {
	Element
	isStyleSelector()
}

// SubStyle is the category interface for the style parts that live inside a
// Style: IconStyle, LabelStyle, LineStyle, PolyStyle, BalloonStyle, ListStyle.
type SubStyle interface {
	Element
	isSubStyle()
}

// TimePrimitive is the category interface for TimeStamp and TimeSpan.
type TimePrimitive interface {
	Element
	isTimePrimitive()
}

// AbstractView is the category interface for Camera and LookAt.
type AbstractView interface {
	Element
	isAbstractView()
}

// TourPrimitive is the category interface for the gx tour playlist entries.
type TourPrimitive interface {
	Element
	isTourPrimitive()
}

// UpdateOperation is the category interface for Change, Create and Delete.
type UpdateOperation interface {
	Element
	isUpdateOperation()
}

// Object carries the attribute pair shared by every Object-derived kind.
//
// KML attaches "id" and "targetId" as XML attributes, not child elements.
// Embedding Object also provides the Element marker, so any struct embedding
// it participates in the object model automatically.
type Object struct {
	ID       string `kml:"id,attr"`
	TargetID string `kml:"targetId,attr"`
}

func (Object) isElement() {}

// Coordinate is a single geographic position.
//
// Lon and Lat are in decimal degrees (WGS-84), Alt in meters. HasAlt reports
// whether the source text carried a third component; a coordinate list within
// one element is homogeneous, so all entries share the same HasAlt.
type Coordinate struct {
	Lon    float64
	Lat    float64
	Alt    float64
	HasAlt bool
}

// Coordinates is an ordered coordinate list as parsed from a
// <coordinates> blob or accumulated from repeated <gx:coord> children.
type Coordinates []Coordinate
