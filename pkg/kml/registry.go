package kml

import (
	"reflect"
	"strings"
	"sync"
)

// Category is the closed polymorphism group a Kind belongs to.
type Category int

const (
	// CategoryNone marks helper kinds outside the Object hierarchy (hotSpot,
	// Snippet, SimpleData and similar).
	CategoryNone Category = iota
	// CategoryObject marks Object-derived kinds with no narrower category.
	CategoryObject
	CategoryFeature
	CategoryGeometry
	CategoryStyleSelector
	CategorySubStyle
	CategoryTimePrimitive
	CategoryAbstractView
	CategoryTourPrimitive
	CategoryUpdateOperation

	// categoryAny matches every registered kind; used for Update operation
	// payloads, which may carry arbitrary objects.
	categoryAny
)

// fieldKind is the coercion/dispatch class of one field.
type fieldKind int

const (
	fieldString fieldKind = iota
	fieldInt
	fieldFloat
	fieldBool
	fieldTime       // *TimeValue
	fieldTimeList   // []TimeValue, one coercion per repeated child
	fieldStringList // []string, one entry per repeated child
	fieldEnum       // pointer to an enum type
	fieldCoord      // *Coordinate (scalar coordinates blob, e.g. Point)
	fieldCoordList  // Coordinates
	fieldKindPtr    // pointer to another kind's struct
	fieldKindList   // slice of pointers to another kind's struct
	fieldIface      // category interface scalar
	fieldIfaceList  // category interface slice
	fieldContent    // whole-inner-text capture (Snippet, SimpleData)
)

// Field is one entry of a Kind's ordered field descriptor table.
type Field struct {
	// Name is the XML name as serialized ("gx:drawOrder", "targetId").
	// Empty for kind- and interface-typed fields, which dispatch by the
	// child element's own tag and type instead.
	Name string
	// Sym is Name with the namespace colon replaced by an underscore.
	Sym string
	// Index is the reflect field index path from the kind's struct root.
	Index []int
	// Attr marks fields that serialize as XML attributes.
	Attr bool
	Kind fieldKind
	// Elem is the target struct type for kind fields, the enum type for enum
	// fields and the interface type for interface fields.
	Elem reflect.Type
	Enum *enumDef
	// Category restricts which kinds an interface field accepts.
	Category Category
	// Optional is true for pointer- and slice-typed fields, where "absent"
	// is representable. Non-pointer scalar fields coerce empty input to the
	// type's zero value instead.
	Optional bool
}

// Kind describes one registered KML element kind.
type Kind struct {
	// Name is the normalized registry symbol ("Placemark", "gx_Track").
	Name string
	// XMLTag is the serialized tag with the namespace colon restored
	// ("gx:Track", "Pair").
	XMLTag string
	// Type is the kind's struct type.
	Type     reflect.Type
	Category Category
	// Fields is the ordered field schema; attributes first is not guaranteed,
	// the order follows struct declaration order (which follows KML schema
	// order).
	Fields []Field

	fieldsByName map[string]int
	content      int // index into Fields of the whole-text field, -1 if none
}

// New returns a default-constructed instance of the kind.
func (k *Kind) New() Element {
	return reflect.New(k.Type).Interface().(Element)
}

// FieldByName returns the field registered under the normalized name sym.
func (k *Kind) FieldByName(sym string) (*Field, bool) {
	if i, ok := k.fieldsByName[sym]; ok {
		return &k.Fields[i], true
	}
	return nil, false
}

// ContentField returns the whole-text capture field, if the kind has one.
func (k *Kind) ContentField() (*Field, bool) {
	if k.content < 0 {
		return nil, false
	}
	return &k.Fields[k.content], true
}

// Registry maps XML tags to kind descriptors.
//
// A Registry is immutable once built; decoders and encoders hold one and may
// share it freely across goroutines. Most callers want DefaultRegistry.
type Registry struct {
	kinds       map[string]*Kind
	byType      map[reflect.Type]*Kind
	byCategory  map[Category][]*Kind
	enums       map[string]*enumDef
	enumsByType map[reflect.Type]*enumDef
	all         []*Kind
}

// kindSpec is one row of the registration table.
type kindSpec struct {
	xmlTag   string
	proto    Element
	category Category
	// aliases are additional tags resolving to the same kind: legacy names
	// (Url), placement names sharing a shape (overlayXY et al.), and
	// gx-prefixed twins.
	aliases []string
}

// kindSpecs declares every kind in the object model. Registration order is
// the listing order returned by Registry.Kinds.
var kindSpecs = []kindSpec{
	// Features
	{"Document", &Document{}, CategoryFeature, nil},
	{"Folder", &Folder{}, CategoryFeature, nil},
	{"Placemark", &Placemark{}, CategoryFeature, nil},
	{"NetworkLink", &NetworkLink{}, CategoryFeature, nil},
	{"GroundOverlay", &GroundOverlay{}, CategoryFeature, nil},
	{"ScreenOverlay", &ScreenOverlay{}, CategoryFeature, nil},
	{"PhotoOverlay", &PhotoOverlay{}, CategoryFeature, nil},
	{"gx:Tour", &GxTour{}, CategoryFeature, nil},

	// Geometries
	{"Point", &Point{}, CategoryGeometry, nil},
	{"LineString", &LineString{}, CategoryGeometry, nil},
	{"LinearRing", &LinearRing{}, CategoryGeometry, nil},
	{"Polygon", &Polygon{}, CategoryGeometry, nil},
	{"MultiGeometry", &MultiGeometry{}, CategoryGeometry, nil},
	{"Model", &Model{}, CategoryGeometry, nil},
	{"gx:Track", &GxTrack{}, CategoryGeometry, nil},
	{"gx:MultiTrack", &GxMultiTrack{}, CategoryGeometry, nil},

	// Style selectors and sub-styles
	{"Style", &Style{}, CategoryStyleSelector, nil},
	{"StyleMap", &StyleMap{}, CategoryStyleSelector, nil},
	{"Pair", &StyleMapPair{}, CategoryObject, []string{"StyleMapPair"}},
	{"IconStyle", &IconStyle{}, CategorySubStyle, nil},
	{"LabelStyle", &LabelStyle{}, CategorySubStyle, nil},
	{"LineStyle", &LineStyle{}, CategorySubStyle, nil},
	{"PolyStyle", &PolyStyle{}, CategorySubStyle, nil},
	{"BalloonStyle", &BalloonStyle{}, CategorySubStyle, nil},
	{"ListStyle", &ListStyle{}, CategorySubStyle, nil},
	{"ItemIcon", &ItemIcon{}, CategoryObject, nil},
	{"hotSpot", &HotSpot{}, CategoryNone, []string{"overlayXY", "screenXY", "rotationXY", "size"}},

	// Time primitives and views
	{"TimeStamp", &TimeStamp{}, CategoryTimePrimitive, []string{"gx:TimeStamp"}},
	{"TimeSpan", &TimeSpan{}, CategoryTimePrimitive, []string{"gx:TimeSpan"}},
	{"Camera", &Camera{}, CategoryAbstractView, nil},
	{"LookAt", &LookAt{}, CategoryAbstractView, nil},

	// Links and shared helpers
	{"Link", &Link{}, CategoryObject, []string{"Url"}},
	{"Icon", &Icon{}, CategoryObject, nil},
	{"Location", &Location{}, CategoryObject, nil},
	{"Orientation", &Orientation{}, CategoryObject, nil},
	{"Scale", &Scale{}, CategoryObject, nil},
	{"Alias", &Alias{}, CategoryObject, nil},
	{"ResourceMap", &ResourceMap{}, CategoryObject, nil},
	{"Region", &Region{}, CategoryObject, nil},
	{"Lod", &Lod{}, CategoryObject, nil},
	{"LatLonBox", &LatLonBox{}, CategoryObject, nil},
	{"LatLonAltBox", &LatLonAltBox{}, CategoryObject, nil},
	{"gx:LatLonQuad", &GxLatLonQuad{}, CategoryObject, nil},
	{"ViewVolume", &ViewVolume{}, CategoryObject, nil},
	{"ImagePyramid", &ImagePyramid{}, CategoryObject, nil},
	{"atom:author", &AtomAuthor{}, CategoryNone, []string{"AtomAuthor"}},
	{"atom:link", &AtomLink{}, CategoryNone, []string{"AtomLink"}},

	// Custom data
	{"Snippet", &Snippet{}, CategoryNone, []string{"linkSnippet"}},
	{"ExtendedData", &ExtendedData{}, CategoryNone, nil},
	{"Data", &Data{}, CategoryNone, nil},
	{"SchemaData", &SchemaData{}, CategoryNone, nil},
	{"SimpleData", &SimpleData{}, CategoryNone, nil},
	{"Schema", &Schema{}, CategoryNone, nil},
	{"SimpleField", &SimpleField{}, CategoryNone, nil},

	// Tours and updates
	{"gx:Playlist", &GxPlaylist{}, CategoryObject, nil},
	{"gx:AnimatedUpdate", &GxAnimatedUpdate{}, CategoryTourPrimitive, nil},
	{"gx:FlyTo", &GxFlyTo{}, CategoryTourPrimitive, nil},
	{"gx:SoundCue", &GxSoundCue{}, CategoryTourPrimitive, nil},
	{"gx:TourControl", &GxTourControl{}, CategoryTourPrimitive, nil},
	{"gx:Wait", &GxWait{}, CategoryTourPrimitive, nil},
	{"Update", &Update{}, CategoryNone, nil},
	{"Change", &Change{}, CategoryUpdateOperation, nil},
	{"Create", &Create{}, CategoryUpdateOperation, nil},
	{"Delete", &Delete{}, CategoryUpdateOperation, nil},
	{"NetworkLinkControl", &NetworkLinkControl{}, CategoryNone, nil},
}

// ifaceCategories maps interface field types to their category.
var ifaceCategories = map[reflect.Type]Category{
	reflect.TypeOf((*Feature)(nil)).Elem():         CategoryFeature,
	reflect.TypeOf((*Geometry)(nil)).Elem():        CategoryGeometry,
	reflect.TypeOf((*StyleSelector)(nil)).Elem():   CategoryStyleSelector,
	reflect.TypeOf((*SubStyle)(nil)).Elem():        CategorySubStyle,
	reflect.TypeOf((*TimePrimitive)(nil)).Elem():   CategoryTimePrimitive,
	reflect.TypeOf((*AbstractView)(nil)).Elem():    CategoryAbstractView,
	reflect.TypeOf((*TourPrimitive)(nil)).Elem():   CategoryTourPrimitive,
	reflect.TypeOf((*UpdateOperation)(nil)).Elem(): CategoryUpdateOperation,
	reflect.TypeOf((*Element)(nil)).Elem():         categoryAny,
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the shared registry covering the full object model.
// It is built once on first use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry builds a registry from the full kind declaration table.
//
// Building is deterministic and has no load-order side effects; tests that
// want an isolated registry can construct their own.
func NewRegistry() *Registry {
	r := &Registry{
		kinds:       make(map[string]*Kind),
		byType:      make(map[reflect.Type]*Kind),
		byCategory:  make(map[Category][]*Kind),
		enums:       make(map[string]*enumDef),
		enumsByType: make(map[reflect.Type]*enumDef),
	}

	for _, d := range enumDefs {
		r.enums[normalizeName(d.name)] = d
		r.enumsByType[d.goType] = d
	}
	// The gx-prefixed altitude mode shares the merged vocabulary.
	r.enums["gx_altitudeMode"] = altitudeModeDef

	for _, spec := range kindSpecs {
		t := reflect.TypeOf(spec.proto).Elem()
		k := &Kind{
			Name:         normalizeName(spec.xmlTag),
			XMLTag:       spec.xmlTag,
			Type:         t,
			Category:     spec.category,
			fieldsByName: make(map[string]int),
			content:      -1,
		}
		r.buildFields(k, t, nil)
		r.kinds[k.Name] = k
		for _, alias := range spec.aliases {
			r.kinds[normalizeName(alias)] = k
		}
		r.byType[t] = k
		r.byCategory[k.Category] = append(r.byCategory[k.Category], k)
		r.all = append(r.all, k)
	}
	return r
}

// buildFields walks t's fields (flattening embedded bases) into k's
// descriptor table. Computed once here; never re-derived per instance.
func (r *Registry) buildFields(k *Kind, t reflect.Type, prefix []int) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := append(append([]int(nil), prefix...), i)

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			r.buildFields(k, sf.Type, index)
			continue
		}

		name, attr, content := parseFieldTag(sf)
		f := Field{
			Name:     name,
			Sym:      normalizeName(name),
			Index:    index,
			Attr:     attr,
			Optional: sf.Type.Kind() == reflect.Ptr || sf.Type.Kind() == reflect.Slice,
		}

		switch {
		case content:
			f.Kind = fieldContent
		case sf.Type == coordinatesType:
			f.Kind = fieldCoordList
		case sf.Type == coordinatePtrType:
			f.Kind = fieldCoord
		case sf.Type == timeValuePtrType:
			f.Kind = fieldTime
		case sf.Type == timeValueSliceType:
			f.Kind = fieldTimeList
		case sf.Type == stringSliceType:
			f.Kind = fieldStringList
		case sf.Type.Kind() == reflect.Ptr:
			elem := sf.Type.Elem()
			if d, ok := r.enumsByType[elem]; ok {
				f.Kind = fieldEnum
				f.Elem = elem
				f.Enum = d
			} else {
				switch elem.Kind() {
				case reflect.String:
					f.Kind = fieldString
				case reflect.Bool:
					f.Kind = fieldBool
				case reflect.Int:
					f.Kind = fieldInt
				case reflect.Float64:
					f.Kind = fieldFloat
				case reflect.Struct:
					f.Kind = fieldKindPtr
					f.Elem = elem
				}
			}
		case sf.Type.Kind() == reflect.Interface:
			f.Kind = fieldIface
			f.Elem = sf.Type
			f.Category = ifaceCategories[sf.Type]
		case sf.Type.Kind() == reflect.Slice:
			elem := sf.Type.Elem()
			if elem.Kind() == reflect.Interface {
				f.Kind = fieldIfaceList
				f.Elem = elem
				f.Category = ifaceCategories[elem]
			} else if elem.Kind() == reflect.Ptr && elem.Elem().Kind() == reflect.Struct {
				f.Kind = fieldKindList
				f.Elem = elem.Elem()
			}
		case sf.Type.Kind() == reflect.String:
			// Required attribute-style fields (Data.Name, AtomLink.Href).
			f.Kind = fieldString
		}

		idx := len(k.Fields)
		k.Fields = append(k.Fields, f)
		if content {
			k.content = idx
		}
		if f.Sym != "" {
			k.fieldsByName[f.Sym] = idx
			// <gx:altitudeMode> populates the same field as <altitudeMode>.
			if f.Sym == "altitudeMode" {
				k.fieldsByName["gx_altitudeMode"] = idx
			}
		}
	}
}

var (
	coordinatesType    = reflect.TypeOf(Coordinates(nil))
	coordinatePtrType  = reflect.TypeOf((*Coordinate)(nil))
	timeValuePtrType   = reflect.TypeOf((*TimeValue)(nil))
	timeValueSliceType = reflect.TypeOf([]TimeValue(nil))
	stringSliceType    = reflect.TypeOf([]string(nil))
)

// parseFieldTag splits a `kml:"name,opt"` struct tag.
func parseFieldTag(sf reflect.StructField) (name string, attr, content bool) {
	tag, ok := sf.Tag.Lookup("kml")
	if !ok {
		return "", false, false
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	for _, opt := range parts[1:] {
		switch opt {
		case "attr":
			attr = true
		case "content":
			content = true
		}
	}
	return name, attr, content
}

// Lookup resolves a normalized tag symbol to its kind descriptor.
func (r *Registry) Lookup(tag string) (*Kind, bool) {
	k, ok := r.kinds[tag]
	return k, ok
}

// LookupSlow is the fallback resolution path for tags the direct map misses:
// it retries case-insensitively and with any namespace prefix stripped.
// Same outcome as Lookup when it matches, just slower; callers try Lookup
// first.
func (r *Registry) LookupSlow(tag string) (*Kind, bool) {
	bare := tag
	if i := strings.LastIndexAny(tag, "_:"); i >= 0 {
		bare = tag[i+1:]
	}
	for name, k := range r.kinds {
		if strings.EqualFold(name, tag) || strings.EqualFold(name, bare) {
			return k, true
		}
	}
	return nil, false
}

// KindOf returns the descriptor a concrete element instance was built from.
func (r *Registry) KindOf(el Element) (*Kind, bool) {
	t := reflect.TypeOf(el)
	if t == nil || t.Kind() != reflect.Ptr {
		return nil, false
	}
	k, ok := r.byType[t.Elem()]
	return k, ok
}

// KindsInCategory returns the fixed list of kinds behind a category, in
// registration order.
func (r *Registry) KindsInCategory(c Category) []*Kind {
	return r.byCategory[c]
}

// Kinds returns every registered kind in registration order, aliases
// excluded.
func (r *Registry) Kinds() []*Kind {
	return r.all
}

// enumByTag resolves a normalized tag to an enum definition, if the tag
// names a declared enumeration.
func (r *Registry) enumByTag(tag string) (*enumDef, bool) {
	d, ok := r.enums[tag]
	return d, ok
}

// normalizeName replaces the namespace colon with an underscore, turning an
// XML tag into a registry symbol ("gx:Track" -> "gx_Track").
func normalizeName(name string) string {
	return strings.ReplaceAll(name, ":", "_")
}
