package kml

// Point is a single geographic position.
//
// Coordinates is scalar: a <coordinates> blob under a Point carries exactly
// one tuple.
type Point struct {
	Object
	Extrude      *bool         `kml:"extrude"`
	AltitudeMode *AltitudeMode `kml:"altitudeMode"`
	Coordinates  *Coordinate   `kml:"coordinates"`
}

func (*Point) isGeometry() {}

// LineString is a connected set of line segments.
type LineString struct {
	Object
	GxAltitudeOffset *float64      `kml:"gx:altitudeOffset"`
	Extrude          *bool         `kml:"extrude"`
	Tessellate       *bool         `kml:"tessellate"`
	AltitudeMode     *AltitudeMode `kml:"altitudeMode"`
	GxDrawOrder      *int          `kml:"gx:drawOrder"`
	Coordinates      Coordinates   `kml:"coordinates"`
}

func (*LineString) isGeometry() {}

// LinearRing is a closed line, used on its own or as a polygon boundary.
type LinearRing struct {
	Object
	GxAltitudeOffset *float64      `kml:"gx:altitudeOffset"`
	Extrude          *bool         `kml:"extrude"`
	Tessellate       *bool         `kml:"tessellate"`
	AltitudeMode     *AltitudeMode `kml:"altitudeMode"`
	Coordinates      Coordinates   `kml:"coordinates"`
}

func (*LinearRing) isGeometry() {}

// Polygon is an outer ring with optional inner (hole) rings.
//
// In the XML form each ring is wrapped in <outerBoundaryIs> or
// <innerBoundaryIs>; the wrappers are structural only and have no kind of
// their own. Strict KML allows one ring per inner wrapper, but producers nest
// several, so InnerBoundaries collects every valid ring found.
type Polygon struct {
	Object
	Extrude         *bool         `kml:"extrude"`
	Tessellate      *bool         `kml:"tessellate"`
	AltitudeMode    *AltitudeMode `kml:"altitudeMode"`
	OuterBoundary   *LinearRing   `kml:"outerBoundaryIs"`
	InnerBoundaries []*LinearRing `kml:"innerBoundaryIs"`
}

func (*Polygon) isGeometry() {}

// MultiGeometry is a container of geometries.
type MultiGeometry struct {
	Object
	Geometries []Geometry
}

func (*MultiGeometry) isGeometry() {}

// Model places a textured 3D object.
type Model struct {
	Object
	AltitudeMode *AltitudeMode `kml:"altitudeMode"`
	Location     *Location     `kml:"Location"`
	Orientation  *Orientation  `kml:"Orientation"`
	Scale        *Scale        `kml:"Scale"`
	Link         *Link         `kml:"Link"`
	ResourceMap  *ResourceMap  `kml:"ResourceMap"`
}

func (*Model) isGeometry() {}

// GxTrack is a <gx:Track>: parallel arrays of timestamps, positions and
// angles describing movement over time.
type GxTrack struct {
	Object
	AltitudeMode *AltitudeMode `kml:"altitudeMode"`
	When         []TimeValue   `kml:"when"`
	Coords       Coordinates   `kml:"gx:coord"`
	Angles       []string      `kml:"gx:angles"`
	Model        *Model        `kml:"Model"`
	ExtendedData *ExtendedData `kml:"ExtendedData"`
}

func (*GxTrack) isGeometry() {}

// GxMultiTrack is a <gx:MultiTrack> grouping several tracks.
type GxMultiTrack struct {
	Object
	AltitudeMode  *AltitudeMode `kml:"altitudeMode"`
	GxInterpolate *bool         `kml:"gx:interpolate"`
	Tracks        []*GxTrack    `kml:"gx:Track"`
}

func (*GxMultiTrack) isGeometry() {}
