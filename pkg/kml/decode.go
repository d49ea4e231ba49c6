package kml

import (
	"reflect"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// KMLFile is a fully materialized KML document: the ordered children of the
// <kml> root, each either a typed Element or an opaque *etree.Element for
// content the decoder did not recognize. The root wrapper itself is consumed
// during parsing and re-synthesized during serialization; it is not stored.
type KMLFile struct {
	children []any
	warnings int
	log      *zap.Logger
}

// NewKMLFile builds a document from typed elements, for programmatic
// construction and tests.
func NewKMLFile(children ...Element) *KMLFile {
	f := &KMLFile{log: zap.NewNop()}
	for _, c := range children {
		f.children = append(f.children, c)
	}
	return f
}

// Children returns the ordered top-level children: Element values for
// recognized kinds, *etree.Element for opaque content.
func (f *KMLFile) Children() []any {
	return f.children
}

// Features returns the top-level children that are Features, in order.
func (f *KMLFile) Features() []Feature {
	var feats []Feature
	for _, c := range f.children {
		if ft, ok := c.(Feature); ok {
			feats = append(feats, ft)
		}
	}
	return feats
}

// Warnings returns how many recoverable conditions the decoder logged while
// building this file. A nonzero count means partial data somewhere.
func (f *KMLFile) Warnings() int {
	return f.warnings
}

// decoder builds typed elements from an etree document. One decoder handles
// one parse; it accumulates the warning count for the resulting KMLFile.
type decoder struct {
	reg      *Registry
	log      *zap.Logger
	warnings int
}

func newDecoder(reg *Registry, log *zap.Logger) *decoder {
	if reg == nil {
		reg = DefaultRegistry()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &decoder{reg: reg, log: log}
}

func (d *decoder) warn(msg string, fields ...zap.Field) {
	d.warnings++
	d.log.Warn(msg, fields...)
}

// document consumes the <kml> root and builds the file. A missing or
// differently named root is the one fatal, document-level parse error.
func (d *decoder) document(doc *etree.Document) (*KMLFile, error) {
	root := doc.Root()
	if root == nil {
		return nil, &ErrNoRoot{}
	}
	if root.Tag != "kml" {
		return nil, &ErrNoRoot{Tag: root.FullTag()}
	}
	f := &KMLFile{log: d.log}
	for _, child := range root.ChildElements() {
		if el := d.element(child); el != nil {
			f.children = append(f.children, el)
			continue
		}
		// Content the decoder cannot type is kept verbatim at the top level
		// so serialization does not silently drop it.
		f.children = append(f.children, child.Copy())
	}
	f.warnings = d.warnings
	return f, nil
}

// element builds one typed element from el, or returns nil when el has no
// typed result (boundary wrappers, unknown tags). No failure inside a single
// element escapes this call.
func (d *decoder) element(el *etree.Element) Element {
	tag := normalizeTag(el)

	// Boundary wrappers are structural; the Polygon parent unwraps them.
	if tag == "outerBoundaryIs" || tag == "innerBoundaryIs" {
		return nil
	}

	if k, ok := d.reg.Lookup(tag); ok {
		return d.build(k, el)
	}

	// Fallback resolution before giving up; same result, just slower.
	if k, ok := d.reg.LookupSlow(tag); ok {
		return d.build(k, el)
	}

	d.warn("unhandled tag, dropping element; if this is a standard KML element please report it with a sample document",
		zap.String("tag", el.FullTag()))
	return nil
}

// build constructs a default instance of k and populates it from el.
func (d *decoder) build(k *Kind, el *etree.Element) Element {
	inst := k.New()
	v := reflect.ValueOf(inst).Elem()

	for _, a := range el.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		sym := normalizeName(attrName(a))
		f, ok := k.FieldByName(sym)
		if !ok || !f.Attr {
			d.log.Debug("ignoring unknown attribute",
				zap.String("kind", k.Name), zap.String("attr", attrName(a)))
			continue
		}
		d.coerceScalar(v, f, a.Value, k.Name)
	}

	// Whole-text kinds (Snippet, SimpleData) take their entire inner text as
	// the payload instead of dispatching on children.
	if cf, ok := k.ContentField(); ok {
		d.coerceScalar(v, cf, textContent(el), k.Name)
		return inst
	}

	for _, child := range el.ChildElements() {
		d.child(v, k, child)
	}
	return inst
}

// child dispatches one child element of a kind under construction.
func (d *decoder) child(v reflect.Value, k *Kind, el *etree.Element) {
	tag := normalizeTag(el)

	switch tag {
	case "outerBoundaryIs":
		d.outerBoundary(v, k, el)
		return
	case "innerBoundaryIs":
		d.innerBoundary(v, k, el)
		return
	}

	// Coordinate leaves always route to the coordinate codec, never through
	// kind dispatch.
	if tag == "coordinates" || tag == "gx_coord" {
		if f, ok := k.FieldByName(tag); ok && (f.Kind == fieldCoord || f.Kind == fieldCoordList) {
			d.coerceScalar(v, f, textContent(el), k.Name)
			return
		}
		d.warn("coordinates inside an element with no coordinate field, dropping them",
			zap.String("kind", k.Name), zap.String("tag", el.FullTag()))
		return
	}

	// Leaf fields matched by name: scalars, enums, timestamps, repeated text.
	if f, ok := k.FieldByName(tag); ok && !f.Attr && isLeafKind(f.Kind) {
		d.coerceScalar(v, f, textContent(el), k.Name)
		return
	}

	// Nested kinds: build recursively, then assign into the first compatible
	// field of the parent.
	if childKind, ok := d.reg.Lookup(tag); ok {
		built := d.build(childKind, el)
		if !d.assign(v, k, tag, built) {
			d.warn("no compatible field for child element, dropping it",
				zap.String("kind", k.Name), zap.String("child", el.FullTag()))
		}
		return
	}

	// Enum elements whose tag differs from the field's declared name still
	// populate the first field of that enum type.
	if def, ok := d.reg.enumByTag(tag); ok {
		for i := range k.Fields {
			f := &k.Fields[i]
			if f.Kind == fieldEnum && f.Enum == def && !f.Attr {
				d.coerceScalar(v, f, textContent(el), k.Name)
				return
			}
		}
		d.warn("enum element with no matching field, dropping it",
			zap.String("kind", k.Name), zap.String("tag", el.FullTag()))
		return
	}

	// Slow path: retry resolution case-insensitively and prefix-stripped
	// before declaring the tag unhandled.
	if childKind, ok := d.reg.LookupSlow(tag); ok {
		built := d.build(childKind, el)
		if !d.assign(v, k, tag, built) {
			d.warn("no compatible field for child element, dropping it",
				zap.String("kind", k.Name), zap.String("child", el.FullTag()))
		}
		return
	}

	d.warn("unhandled tag, dropping element; if this is a standard KML element please report it with a sample document",
		zap.String("parent", k.Name), zap.String("tag", el.FullTag()))
}

// assign places a built child into the first compatible field of the parent.
// The field declared under the child's own tag wins (this is what keeps
// overlayXY/screenXY/rotationXY/size apart even though they share a shape);
// otherwise the first type- or category-compatible field takes it. Scalar
// fields already holding a value are skipped rather than overwritten.
func (d *decoder) assign(v reflect.Value, k *Kind, tag string, child Element) bool {
	cv := reflect.ValueOf(child)
	ct := cv.Type().Elem()

	if f, ok := k.FieldByName(tag); ok && !f.Attr {
		if d.assignField(v, f, cv, ct, child) {
			return true
		}
	}
	for i := range k.Fields {
		f := &k.Fields[i]
		if f.Attr {
			continue
		}
		if d.assignField(v, f, cv, ct, child) {
			return true
		}
	}
	return false
}

func (d *decoder) assignField(v reflect.Value, f *Field, cv reflect.Value, ct reflect.Type, child Element) bool {
	fv := v.FieldByIndex(f.Index)
	switch f.Kind {
	case fieldKindPtr:
		if ct == f.Elem && fv.IsNil() {
			fv.Set(cv)
			return true
		}
	case fieldKindList:
		if ct == f.Elem {
			fv.Set(reflect.Append(fv, cv))
			return true
		}
	case fieldIface:
		if matchesCategory(child, f.Category) && fv.IsNil() {
			fv.Set(cv)
			return true
		}
	case fieldIfaceList:
		if matchesCategory(child, f.Category) {
			fv.Set(reflect.Append(fv, cv))
			return true
		}
	}
	return false
}

// outerBoundary handles <outerBoundaryIs>: exactly one LinearRing, or the
// polygon's outer boundary stays unset.
func (d *decoder) outerBoundary(v reflect.Value, k *Kind, el *etree.Element) {
	f, ok := k.FieldByName("outerBoundaryIs")
	if !ok || f.Kind != fieldKindPtr {
		d.warn("outerBoundaryIs inside an element that has no outer boundary",
			zap.String("kind", k.Name))
		return
	}
	var rings []*LinearRing
	for _, c := range el.ChildElements() {
		if normalizeTag(c) != "LinearRing" {
			d.warn("outerBoundaryIs child is not a LinearRing, skipping it",
				zap.String("tag", c.FullTag()))
			continue
		}
		if lr, ok := d.element(c).(*LinearRing); ok {
			rings = append(rings, lr)
		}
	}
	if len(rings) != 1 {
		d.warn("outerBoundaryIs must contain exactly one LinearRing, leaving outer boundary unset",
			zap.String("kind", k.Name), zap.Int("rings", len(rings)))
		return
	}
	v.FieldByIndex(f.Index).Set(reflect.ValueOf(rings[0]))
}

// innerBoundary handles <innerBoundaryIs>. Strict KML allows one ring per
// wrapper, but producers nest several; every valid ring is kept.
func (d *decoder) innerBoundary(v reflect.Value, k *Kind, el *etree.Element) {
	f, ok := k.FieldByName("innerBoundaryIs")
	if !ok || f.Kind != fieldKindList {
		d.warn("innerBoundaryIs inside an element that has no inner boundaries",
			zap.String("kind", k.Name))
		return
	}
	fv := v.FieldByIndex(f.Index)
	for _, c := range el.ChildElements() {
		if normalizeTag(c) != "LinearRing" {
			d.warn("innerBoundaryIs child is not a LinearRing, skipping it",
				zap.String("tag", c.FullTag()))
			continue
		}
		if lr, ok := d.element(c).(*LinearRing); ok {
			fv.Set(reflect.Append(fv, reflect.ValueOf(lr)))
		}
	}
}

// matchesCategory reports whether child belongs to the closed variant set
// behind cat. Type switches keep this free of runtime introspection.
func matchesCategory(child Element, cat Category) bool {
	switch cat {
	case CategoryFeature:
		_, ok := child.(Feature)
		return ok
	case CategoryGeometry:
		_, ok := child.(Geometry)
		return ok
	case CategoryStyleSelector:
		_, ok := child.(StyleSelector)
		return ok
	case CategorySubStyle:
		_, ok := child.(SubStyle)
		return ok
	case CategoryTimePrimitive:
		_, ok := child.(TimePrimitive)
		return ok
	case CategoryAbstractView:
		_, ok := child.(AbstractView)
		return ok
	case CategoryTourPrimitive:
		_, ok := child.(TourPrimitive)
		return ok
	case CategoryUpdateOperation:
		_, ok := child.(UpdateOperation)
		return ok
	case categoryAny:
		return true
	}
	return false
}

// isLeafKind reports whether a field kind coerces directly from leaf text.
func isLeafKind(fk fieldKind) bool {
	switch fk {
	case fieldString, fieldInt, fieldFloat, fieldBool, fieldEnum,
		fieldTime, fieldTimeList, fieldStringList:
		return true
	}
	return false
}

// normalizeTag turns an etree element tag into a registry symbol.
func normalizeTag(el *etree.Element) string {
	if el.Space != "" {
		return el.Space + "_" + el.Tag
	}
	return el.Tag
}

// attrName rebuilds the qualified attribute name.
func attrName(a etree.Attr) string {
	if a.Space != "" {
		return a.Space + ":" + a.Key
	}
	return a.Key
}

// textContent concatenates the direct character data of el, including CDATA
// sections, preserving the raw text exactly.
func textContent(el *etree.Element) string {
	var b strings.Builder
	for _, node := range el.Child {
		if cd, ok := node.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return b.String()
}
