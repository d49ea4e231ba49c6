package kml

// Link references a resource with refresh behavior. The legacy <Url> tag is
// an alias for the same kind.
type Link struct {
	Object
	Href            *string          `kml:"href"`
	RefreshMode     *RefreshMode     `kml:"refreshMode"`
	RefreshInterval *float64         `kml:"refreshInterval"`
	ViewRefreshMode *ViewRefreshMode `kml:"viewRefreshMode"`
	ViewRefreshTime *float64         `kml:"viewRefreshTime"`
	ViewBoundScale  *float64         `kml:"viewBoundScale"`
	ViewFormat      *string          `kml:"viewFormat"`
	HTTPQuery       *string          `kml:"httpQuery"`
}

// Icon references an overlay or icon image, optionally selecting a sub-region.
type Icon struct {
	Object
	Href            *string          `kml:"href"`
	GxX             *int             `kml:"gx:x"`
	GxY             *int             `kml:"gx:y"`
	GxW             *int             `kml:"gx:w"`
	GxH             *int             `kml:"gx:h"`
	RefreshMode     *RefreshMode     `kml:"refreshMode"`
	RefreshInterval *float64         `kml:"refreshInterval"`
	ViewRefreshMode *ViewRefreshMode `kml:"viewRefreshMode"`
	ViewRefreshTime *float64         `kml:"viewRefreshTime"`
	ViewBoundScale  *float64         `kml:"viewBoundScale"`
	ViewFormat      *string          `kml:"viewFormat"`
	HTTPQuery       *string          `kml:"httpQuery"`
}

// Location positions a Model.
type Location struct {
	Object
	Longitude *float64 `kml:"longitude"`
	Latitude  *float64 `kml:"latitude"`
	Altitude  *float64 `kml:"altitude"`
}

// Orientation rotates a Model.
type Orientation struct {
	Object
	Heading *float64 `kml:"heading"`
	Tilt    *float64 `kml:"tilt"`
	Roll    *float64 `kml:"roll"`
}

// Scale resizes a Model along its axes.
type Scale struct {
	Object
	X *float64 `kml:"x"`
	Y *float64 `kml:"y"`
	Z *float64 `kml:"z"`
}

// Alias maps a model texture path to a replacement.
type Alias struct {
	Object
	TargetHref *string `kml:"targetHref"`
	SourceHref *string `kml:"sourceHref"`
}

// ResourceMap collects texture aliases for a Model.
type ResourceMap struct {
	Object
	Aliases []*Alias `kml:"Alias"`
}

// Region culls a feature by view area and level of detail.
type Region struct {
	Object
	LatLonAltBox *LatLonAltBox `kml:"LatLonAltBox"`
	Lod          *Lod          `kml:"Lod"`
}

// Lod defines the projected-size range over which a Region is active.
type Lod struct {
	Object
	MinLodPixels  *float64 `kml:"minLodPixels"`
	MaxLodPixels  *float64 `kml:"maxLodPixels"`
	MinFadeExtent *float64 `kml:"minFadeExtent"`
	MaxFadeExtent *float64 `kml:"maxFadeExtent"`
}

// LatLonBox bounds a GroundOverlay.
type LatLonBox struct {
	Object
	North    *float64 `kml:"north"`
	South    *float64 `kml:"south"`
	East     *float64 `kml:"east"`
	West     *float64 `kml:"west"`
	Rotation *float64 `kml:"rotation"`
}

// LatLonAltBox bounds a Region in three dimensions.
type LatLonAltBox struct {
	Object
	North        *float64      `kml:"north"`
	South        *float64      `kml:"south"`
	East         *float64      `kml:"east"`
	West         *float64      `kml:"west"`
	MinAltitude  *float64      `kml:"minAltitude"`
	MaxAltitude  *float64      `kml:"maxAltitude"`
	AltitudeMode *AltitudeMode `kml:"altitudeMode"`
}

// GxLatLonQuad bounds a GroundOverlay with four corner points.
type GxLatLonQuad struct {
	Object
	Coordinates Coordinates `kml:"coordinates"`
}

// ViewVolume defines the visible part of a PhotoOverlay scene.
type ViewVolume struct {
	Object
	LeftFov   *float64 `kml:"leftFov"`
	RightFov  *float64 `kml:"rightFov"`
	BottomFov *float64 `kml:"bottomFov"`
	TopFov    *float64 `kml:"topFov"`
	Near      *float64 `kml:"near"`
}

// ImagePyramid tiles a large PhotoOverlay image.
type ImagePyramid struct {
	Object
	TileSize   *int        `kml:"tileSize"`
	MaxWidth   *int        `kml:"maxWidth"`
	MaxHeight  *int        `kml:"maxHeight"`
	GridOrigin *GridOrigin `kml:"gridOrigin"`
}

// AtomAuthor is the <atom:author> metadata element.
type AtomAuthor struct {
	Name  *string `kml:"name"`
	URI   *string `kml:"uri"`
	Email *string `kml:"email"`
}

func (*AtomAuthor) isElement() {}

// AtomLink is the <atom:link> metadata element; its payload is attributes.
type AtomLink struct {
	Href string  `kml:"href,attr"`
	Rel  *string `kml:"rel,attr"`
	Type *string `kml:"type,attr"`
}

func (*AtomLink) isElement() {}
