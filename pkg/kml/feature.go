package kml

// FeatureBase holds the fields shared by every Feature kind.
//
// Fields appear in KML schema order; the encoder emits them in this order.
// Optional scalars are pointers so "absent" and "zero" stay distinct across
// a parse/serialize round trip.
type FeatureBase struct {
	Object
	Name           *string     `kml:"name"`
	Visibility     *bool       `kml:"visibility"`
	Open           *bool       `kml:"open"`
	AtomAuthor     *AtomAuthor `kml:"atom:author"`
	AtomLink       *AtomLink   `kml:"atom:link"`
	Address        *string     `kml:"address"`
	AddressDetails *string     `kml:"xal:AddressDetails"`
	PhoneNumber    *string     `kml:"phoneNumber"`
	Snippet        *Snippet    `kml:"Snippet"`
	Description    *string     `kml:"description"`
	View           AbstractView
	Time           TimePrimitive
	StyleURL       *string `kml:"styleUrl"`
	Styles         []StyleSelector
	Region         *Region       `kml:"Region"`
	ExtendedData   *ExtendedData `kml:"ExtendedData"`
}

// Document is a container for features, schemas and shared styles.
type Document struct {
	FeatureBase
	Schemas  []*Schema `kml:"Schema"`
	Features []Feature
}

func (*Document) isFeature() {}

// Folder groups features hierarchically.
type Folder struct {
	FeatureBase
	Features []Feature
}

func (*Folder) isFeature() {}

// Placemark is a feature with an optional geometry.
type Placemark struct {
	FeatureBase
	Geometry Geometry
}

func (*Placemark) isFeature() {}

// NetworkLink references a KML resource on a remote or local location.
type NetworkLink struct {
	FeatureBase
	RefreshVisibility *bool `kml:"refreshVisibility"`
	FlyToView         *bool `kml:"flyToView"`
	Link              *Link `kml:"Link"`
}

func (*NetworkLink) isFeature() {}

// OverlayBase holds the fields shared by the overlay features.
type OverlayBase struct {
	FeatureBase
	Color     *string `kml:"color"`
	DrawOrder *int    `kml:"drawOrder"`
	Icon      *Icon   `kml:"Icon"`
}

// GroundOverlay drapes an image over terrain.
type GroundOverlay struct {
	OverlayBase
	Altitude     *float64      `kml:"altitude"`
	AltitudeMode *AltitudeMode `kml:"altitudeMode"`
	LatLonBox    *LatLonBox    `kml:"LatLonBox"`
	LatLonQuad   *GxLatLonQuad `kml:"gx:LatLonQuad"`
}

func (*GroundOverlay) isFeature() {}

// ScreenOverlay fixes an image to the screen.
//
// The four placement fields share the hotSpot shape; KML distinguishes them
// purely by tag name (overlayXY, screenXY, rotationXY, size).
type ScreenOverlay struct {
	OverlayBase
	OverlayXY  *HotSpot `kml:"overlayXY"`
	ScreenXY   *HotSpot `kml:"screenXY"`
	RotationXY *HotSpot `kml:"rotationXY"`
	Size       *HotSpot `kml:"size"`
	Rotation   *float64 `kml:"rotation"`
}

func (*ScreenOverlay) isFeature() {}

// PhotoOverlay positions a photograph relative to a camera.
type PhotoOverlay struct {
	OverlayBase
	Rotation     *float64      `kml:"rotation"`
	ViewVolume   *ViewVolume   `kml:"ViewVolume"`
	ImagePyramid *ImagePyramid `kml:"ImagePyramid"`
	Point        *Point        `kml:"Point"`
	Shape        *Shape        `kml:"shape"`
}

func (*PhotoOverlay) isFeature() {}

// GxTour is a scripted camera tour (<gx:Tour>).
type GxTour struct {
	Object
	Name        *string     `kml:"name"`
	Description *string     `kml:"description"`
	Playlist    *GxPlaylist `kml:"gx:Playlist"`
}

func (*GxTour) isFeature() {}
