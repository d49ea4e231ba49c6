package kml

// ColorStyle holds the color fields shared by the drawing sub-styles.
type ColorStyle struct {
	Object
	Color     *string    `kml:"color"`
	ColorMode *ColorMode `kml:"colorMode"`
}

// Style groups the sub-styles that control how a feature is drawn.
type Style struct {
	Object
	IconStyle    *IconStyle    `kml:"IconStyle"`
	LabelStyle   *LabelStyle   `kml:"LabelStyle"`
	LineStyle    *LineStyle    `kml:"LineStyle"`
	PolyStyle    *PolyStyle    `kml:"PolyStyle"`
	BalloonStyle *BalloonStyle `kml:"BalloonStyle"`
	ListStyle    *ListStyle    `kml:"ListStyle"`
}

func (*Style) isStyleSelector() {}

// StyleMap switches between a normal and a highlight style.
type StyleMap struct {
	Object
	Pairs []*StyleMapPair `kml:"Pair"`
}

func (*StyleMap) isStyleSelector() {}

// StyleMapPair is one <Pair> entry of a StyleMap.
type StyleMapPair struct {
	Object
	Key      *StyleState `kml:"key"`
	StyleURL *string     `kml:"styleUrl"`
	Style    *Style      `kml:"Style"`
}

// IconStyle controls how point placemark icons are drawn.
type IconStyle struct {
	ColorStyle
	Scale   *float64 `kml:"scale"`
	Heading *float64 `kml:"heading"`
	Icon    *Icon    `kml:"Icon"`
	HotSpot *HotSpot `kml:"hotSpot"`
}

func (*IconStyle) isSubStyle() {}

// LabelStyle controls how placemark labels are drawn.
type LabelStyle struct {
	ColorStyle
	Scale *float64 `kml:"scale"`
}

func (*LabelStyle) isSubStyle() {}

// LineStyle controls line width and color.
type LineStyle struct {
	ColorStyle
	Width             *float64 `kml:"width"`
	GxOuterColor      *string  `kml:"gx:outerColor"`
	GxOuterWidth      *float64 `kml:"gx:outerWidth"`
	GxPhysicalWidth   *float64 `kml:"gx:physicalWidth"`
	GxLabelVisibility *bool    `kml:"gx:labelVisibility"`
}

func (*LineStyle) isSubStyle() {}

// PolyStyle controls polygon fill and outline.
type PolyStyle struct {
	ColorStyle
	Fill    *bool `kml:"fill"`
	Outline *bool `kml:"outline"`
}

func (*PolyStyle) isSubStyle() {}

// BalloonStyle controls the description balloon.
type BalloonStyle struct {
	Object
	BgColor     *string      `kml:"bgColor"`
	TextColor   *string      `kml:"textColor"`
	Text        *string      `kml:"text"`
	DisplayMode *DisplayMode `kml:"displayMode"`
}

func (*BalloonStyle) isSubStyle() {}

// ListStyle controls how a feature appears in list views.
type ListStyle struct {
	Object
	ListItemType *ListItemType `kml:"listItemType"`
	BgColor      *string       `kml:"bgColor"`
	ItemIcons    []*ItemIcon   `kml:"ItemIcon"`
}

func (*ListStyle) isSubStyle() {}

// ItemIcon is the list-view icon for one fetch state.
type ItemIcon struct {
	Object
	State *ItemIconState `kml:"state"`
	Href  *string        `kml:"href"`
}

// HotSpot is the x/y anchor shape shared by hotSpot, overlayXY, screenXY,
// rotationXY and size elements. All payload is carried in attributes.
type HotSpot struct {
	X      *float64 `kml:"x,attr"`
	Y      *float64 `kml:"y,attr"`
	XUnits *Units   `kml:"xunits,attr"`
	YUnits *Units   `kml:"yunits,attr"`
}

func (*HotSpot) isElement() {}
