package kml

import "reflect"

// KML enumerations are closed vocabularies. Each enum is a string-based type
// whose constructor validates membership; an out-of-set value is a hard error
// naming the enum and the offered value. Callers that want lenient behavior
// (the decoder) catch that error, warn and leave the field unset.

// AltitudeMode says how altitude values are interpreted. The gx seafloor
// modes share the vocabulary; <gx:altitudeMode> resolves to the same type.
type AltitudeMode string

const (
	ClampToGround      AltitudeMode = "clampToGround"
	RelativeToGround   AltitudeMode = "relativeToGround"
	Absolute           AltitudeMode = "absolute"
	ClampToSeaFloor    AltitudeMode = "clampToSeaFloor"
	RelativeToSeaFloor AltitudeMode = "relativeToSeaFloor"
)

// NewAltitudeMode validates s as an altitude mode.
//
// The common but non-conformant spelling "clampedToGround" is normalized to
// "clampToGround" before validation.
func NewAltitudeMode(s string) (AltitudeMode, error) {
	v, err := altitudeModeDef.parse(s)
	return AltitudeMode(v), err
}

// RefreshMode controls time-based link refresh.
type RefreshMode string

// NewRefreshMode validates s as a refresh mode.
func NewRefreshMode(s string) (RefreshMode, error) {
	v, err := refreshModeDef.parse(s)
	return RefreshMode(v), err
}

// ViewRefreshMode controls camera-based link refresh.
type ViewRefreshMode string

// NewViewRefreshMode validates s as a view refresh mode.
func NewViewRefreshMode(s string) (ViewRefreshMode, error) {
	v, err := viewRefreshModeDef.parse(s)
	return ViewRefreshMode(v), err
}

// Shape is the projection surface of a PhotoOverlay.
type Shape string

// NewShape validates s as a photo overlay shape.
func NewShape(s string) (Shape, error) {
	v, err := shapeDef.parse(s)
	return Shape(v), err
}

// GridOrigin is the tile numbering origin of an ImagePyramid.
type GridOrigin string

// NewGridOrigin validates s as a grid origin.
func NewGridOrigin(s string) (GridOrigin, error) {
	v, err := gridOriginDef.parse(s)
	return GridOrigin(v), err
}

// DisplayMode shows or hides the description balloon.
type DisplayMode string

// NewDisplayMode validates s as a display mode.
func NewDisplayMode(s string) (DisplayMode, error) {
	v, err := displayModeDef.parse(s)
	return DisplayMode(v), err
}

// ListItemType controls how a feature nests in list views.
type ListItemType string

// NewListItemType validates s as a list item type.
func NewListItemType(s string) (ListItemType, error) {
	v, err := listItemTypeDef.parse(s)
	return ListItemType(v), err
}

// Units interprets hotSpot x/y values.
type Units string

// NewUnits validates s as a units value.
func NewUnits(s string) (Units, error) {
	v, err := unitsDef.parse(s)
	return Units(v), err
}

// ItemIconState is the fetch state an ItemIcon applies to.
type ItemIconState string

// NewItemIconState validates s as an item icon state.
func NewItemIconState(s string) (ItemIconState, error) {
	v, err := itemIconStateDef.parse(s)
	return ItemIconState(v), err
}

// StyleState keys a StyleMap pair.
type StyleState string

// NewStyleState validates s as a style state.
func NewStyleState(s string) (StyleState, error) {
	v, err := styleStateDef.parse(s)
	return StyleState(v), err
}

// ColorMode selects fixed or random coloring.
type ColorMode string

// NewColorMode validates s as a color mode.
func NewColorMode(s string) (ColorMode, error) {
	v, err := colorModeDef.parse(s)
	return ColorMode(v), err
}

// GxFlyToMode is the camera motion profile of a GxFlyTo.
type GxFlyToMode string

// NewGxFlyToMode validates s as a fly-to mode.
func NewGxFlyToMode(s string) (GxFlyToMode, error) {
	v, err := gxFlyToModeDef.parse(s)
	return GxFlyToMode(v), err
}

// GxPlayMode is the playback directive of a GxTourControl.
type GxPlayMode string

// NewGxPlayMode validates s as a play mode.
func NewGxPlayMode(s string) (GxPlayMode, error) {
	v, err := gxPlayModeDef.parse(s)
	return GxPlayMode(v), err
}

// enumDef describes one enumeration: its canonical element tag, its Go type
// and its fixed value set.
type enumDef struct {
	name      string
	goType    reflect.Type
	values    []string
	normalize func(string) string
}

// parse validates raw against the value set, applying normalization first.
func (d *enumDef) parse(raw string) (string, error) {
	if d.normalize != nil {
		raw = d.normalize(raw)
	}
	for _, v := range d.values {
		if raw == v {
			return raw, nil
		}
	}
	return "", &ErrUnknownEnumValue{Enum: d.name, Value: raw, Allowed: d.values}
}

var (
	altitudeModeDef = &enumDef{
		name:   "altitudeMode",
		goType: reflect.TypeOf(AltitudeMode("")),
		values: []string{"clampToGround", "relativeToGround", "absolute", "clampToSeaFloor", "relativeToSeaFloor"},
		normalize: func(s string) string {
			if s == "clampedToGround" {
				return "clampToGround"
			}
			return s
		},
	}
	refreshModeDef = &enumDef{
		name:   "refreshMode",
		goType: reflect.TypeOf(RefreshMode("")),
		values: []string{"onChange", "onInterval", "onExpire"},
	}
	viewRefreshModeDef = &enumDef{
		name:   "viewRefreshMode",
		goType: reflect.TypeOf(ViewRefreshMode("")),
		values: []string{"never", "onStop", "onRequest", "onRegion"},
	}
	shapeDef = &enumDef{
		name:   "shape",
		goType: reflect.TypeOf(Shape("")),
		values: []string{"rectangle", "cylinder", "sphere"},
	}
	gridOriginDef = &enumDef{
		name:   "gridOrigin",
		goType: reflect.TypeOf(GridOrigin("")),
		values: []string{"lowerLeft", "upperLeft"},
	}
	displayModeDef = &enumDef{
		name:   "displayMode",
		goType: reflect.TypeOf(DisplayMode("")),
		values: []string{"default", "hide"},
	}
	listItemTypeDef = &enumDef{
		name:   "listItemType",
		goType: reflect.TypeOf(ListItemType("")),
		values: []string{"check", "checkOffOnly", "checkHideChildren", "radioFolder"},
	}
	unitsDef = &enumDef{
		name:   "units",
		goType: reflect.TypeOf(Units("")),
		values: []string{"fraction", "pixels", "insetPixels"},
	}
	itemIconStateDef = &enumDef{
		name:   "state",
		goType: reflect.TypeOf(ItemIconState("")),
		values: []string{"open", "closed", "error", "fetching0", "fetching1", "fetching2"},
	}
	styleStateDef = &enumDef{
		name:   "key",
		goType: reflect.TypeOf(StyleState("")),
		values: []string{"normal", "highlight"},
	}
	colorModeDef = &enumDef{
		name:   "colorMode",
		goType: reflect.TypeOf(ColorMode("")),
		values: []string{"normal", "random"},
	}
	gxFlyToModeDef = &enumDef{
		name:   "gx:flyToMode",
		goType: reflect.TypeOf(GxFlyToMode("")),
		values: []string{"bounce", "smooth"},
	}
	gxPlayModeDef = &enumDef{
		name:   "gx:playMode",
		goType: reflect.TypeOf(GxPlayMode("")),
		values: []string{"pause"},
	}
)

// enumDefs lists every enumeration for registry indexing.
var enumDefs = []*enumDef{
	altitudeModeDef,
	refreshModeDef,
	viewRefreshModeDef,
	shapeDef,
	gridOriginDef,
	displayModeDef,
	listItemTypeDef,
	unitsDef,
	itemIconStateDef,
	styleStateDef,
	colorModeDef,
	gxFlyToModeDef,
	gxPlayModeDef,
}
