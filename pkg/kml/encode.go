package kml

import (
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

const (
	nsKML  = "http://www.opengis.net/kml/2.2"
	nsGx   = "http://www.google.com/kml/ext/2.2"
	nsAtom = "http://www.w3.org/2005/Atom"
)

// Document renders the file back to an XML tree, synthesizing the declaration
// and the namespaced <kml> wrapper. Opaque children captured during parsing
// are emitted verbatim.
func (f *KMLFile) Document() *etree.Document {
	e := &encoder{reg: DefaultRegistry()}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("kml")
	root.CreateAttr("xmlns", nsKML)
	root.CreateAttr("xmlns:gx", nsGx)
	root.CreateAttr("xmlns:atom", nsAtom)
	for _, c := range f.children {
		switch c := c.(type) {
		case Element:
			if el := e.element(c); el != nil {
				root.AddChild(el)
			}
		case *etree.Element:
			root.AddChild(c.Copy())
		}
	}
	return doc
}

// Write serializes the file to w, indented.
func (f *KMLFile) Write(w io.Writer) error {
	doc := f.Document()
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

// WriteFile serializes the file to path.
func (f *KMLFile) WriteFile(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// String renders the file as an XML string.
func (f *KMLFile) String() string {
	doc := f.Document()
	doc.Indent(2)
	s, _ := doc.WriteToString()
	return s
}

// EncodeElement serializes a single typed element to an XML subtree. It
// returns nil for values that are not registered kinds.
func EncodeElement(el Element) *etree.Element {
	e := &encoder{reg: DefaultRegistry()}
	return e.element(el)
}

// encoder walks typed elements back into etree form. It is stateless apart
// from the registry; serialization of well-formed instances cannot fail.
type encoder struct {
	reg *Registry
}

func (e *encoder) element(el Element) *etree.Element {
	return e.kindElement("", el)
}

// kindElement serializes el under tag, defaulting to the kind's declared tag.
// An explicit tag is how field-named placements (overlayXY, linkSnippet) keep
// their serialized name while sharing a kind.
func (e *encoder) kindElement(tag string, el Element) *etree.Element {
	k, ok := e.reg.KindOf(el)
	if !ok {
		return nil
	}
	if tag == "" {
		tag = k.XMLTag
	}
	out := etree.NewElement(tag)
	e.fields(out, k, reflect.ValueOf(el).Elem())
	return out
}

// fields emits k's fields in declaration order, skipping absent values.
func (e *encoder) fields(out *etree.Element, k *Kind, v reflect.Value) {
	for i := range k.Fields {
		f := &k.Fields[i]
		fv := v.FieldByIndex(f.Index)

		if f.Attr {
			if s, ok := scalarText(f, fv); ok {
				out.CreateAttr(f.Name, s)
			}
			continue
		}

		switch f.Kind {
		case fieldContent:
			out.SetText(fv.String())

		case fieldString, fieldInt, fieldFloat, fieldBool, fieldEnum, fieldTime:
			if s, ok := scalarText(f, fv); ok {
				out.CreateElement(f.Name).SetText(s)
			}

		case fieldTimeList:
			for j := 0; j < fv.Len(); j++ {
				tv := fv.Index(j).Interface().(TimeValue)
				out.CreateElement(f.Name).SetText(tv.String())
			}

		case fieldStringList:
			for j := 0; j < fv.Len(); j++ {
				out.CreateElement(f.Name).SetText(fv.Index(j).String())
			}

		case fieldCoord:
			if !fv.IsNil() {
				c := fv.Interface().(*Coordinate)
				out.CreateElement(f.Name).SetText(formatTuple(*c, ","))
			}

		case fieldCoordList:
			coords := fv.Interface().(Coordinates)
			if len(coords) == 0 {
				continue
			}
			if f.Sym == "gx_coord" {
				// gx:coord carries one whitespace-separated tuple per element.
				for _, c := range coords {
					out.CreateElement(f.Name).SetText(formatTuple(c, " "))
				}
			} else {
				out.CreateElement(f.Name).SetText(formatCoordinates(coords))
			}

		case fieldKindPtr:
			if fv.IsNil() {
				continue
			}
			child := fv.Interface().(Element)
			if f.Sym == "outerBoundaryIs" {
				wrap := out.CreateElement(f.Name)
				if ring := e.element(child); ring != nil {
					wrap.AddChild(ring)
				}
				continue
			}
			if el := e.kindElement(f.Name, child); el != nil {
				out.AddChild(el)
			}

		case fieldKindList:
			for j := 0; j < fv.Len(); j++ {
				child := fv.Index(j).Interface().(Element)
				if f.Sym == "innerBoundaryIs" {
					// One wrapper per ring, matching strict KML output even
					// when the input nested several rings in one wrapper.
					wrap := out.CreateElement(f.Name)
					if ring := e.element(child); ring != nil {
						wrap.AddChild(ring)
					}
					continue
				}
				if el := e.kindElement(f.Name, child); el != nil {
					out.AddChild(el)
				}
			}

		case fieldIface:
			if !fv.IsNil() {
				if el := e.element(fv.Interface().(Element)); el != nil {
					out.AddChild(el)
				}
			}

		case fieldIfaceList:
			for j := 0; j < fv.Len(); j++ {
				child := fv.Index(j)
				if child.IsNil() {
					continue
				}
				if el := e.element(child.Interface().(Element)); el != nil {
					out.AddChild(el)
				}
			}
		}
	}
}

// scalarText stringifies a scalar field value. ok is false when the value is
// absent (nil pointer, or empty required string).
func scalarText(f *Field, fv reflect.Value) (string, bool) {
	if fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			return "", false
		}
		fv = fv.Elem()
	}
	switch f.Kind {
	case fieldString:
		s := fv.String()
		if !f.Optional && s == "" {
			return "", false
		}
		return s, true
	case fieldBool:
		if fv.Bool() {
			return "1", true
		}
		return "0", true
	case fieldInt:
		return strconv.Itoa(int(fv.Int())), true
	case fieldFloat:
		return formatFloat(fv.Float()), true
	case fieldEnum:
		return fv.String(), true
	case fieldTime:
		tv := fv.Interface().(TimeValue)
		return tv.String(), true
	}
	return "", false
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatTuple renders one coordinate as lon,lat[,alt] with the given
// separator.
func formatTuple(c Coordinate, sep string) string {
	parts := []string{formatFloat(c.Lon), formatFloat(c.Lat)}
	if c.HasAlt {
		parts = append(parts, formatFloat(c.Alt))
	}
	return strings.Join(parts, sep)
}

// formatCoordinates renders a coordinate list as newline-joined tuples. Only
// the numeric values round-trip; original whitespace style does not.
func formatCoordinates(coords Coordinates) string {
	var b strings.Builder
	for i, c := range coords {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(formatTuple(c, ","))
	}
	return b.String()
}
