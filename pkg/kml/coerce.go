package kml

import (
	"reflect"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/beetlebugorg/kml/internal/coord"
)

// Field coercion: converting raw attribute or leaf text into a field's
// declared type. A failed coercion never aborts the enclosing element; it is
// logged and the field keeps its default. KML in the wild is frequently
// non-conformant, so the decoder favors partial data over hard failure.

// coerceScalar assigns raw text into the field f of the struct value v.
// v must be the addressable struct value of the owning kind.
func (d *decoder) coerceScalar(v reflect.Value, f *Field, raw string, owner string) {
	fv := v.FieldByIndex(f.Index)
	switch f.Kind {
	case fieldContent:
		fv.SetString(raw)

	case fieldString:
		// Raw text is preserved as-is; only the XML layer trims structure.
		if fv.Kind() == reflect.Ptr {
			s := raw
			fv.Set(reflect.ValueOf(&s))
		} else {
			fv.SetString(raw)
		}

	case fieldBool:
		b := parseKMLBool(raw)
		if fv.Kind() == reflect.Ptr {
			fv.Set(reflect.ValueOf(&b))
		} else {
			fv.SetBool(b)
		}

	case fieldInt:
		s := strings.TrimSpace(raw)
		if s == "" {
			if !f.Optional {
				fv.SetInt(0)
			}
			return
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			d.warn("invalid integer value, leaving field unset",
				zap.String("kind", owner), zap.String("field", f.Name), zap.String("value", s))
			return
		}
		if fv.Kind() == reflect.Ptr {
			fv.Set(reflect.ValueOf(&n))
		} else {
			fv.SetInt(int64(n))
		}

	case fieldFloat:
		s := strings.TrimSpace(raw)
		if s == "" {
			if !f.Optional {
				fv.SetFloat(0)
			}
			return
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			d.warn("invalid float value, leaving field unset",
				zap.String("kind", owner), zap.String("field", f.Name), zap.String("value", s))
			return
		}
		if fv.Kind() == reflect.Ptr {
			fv.Set(reflect.ValueOf(&x))
		} else {
			fv.SetFloat(x)
		}

	case fieldEnum:
		val, err := f.Enum.parse(strings.TrimSpace(raw))
		if err != nil {
			// The enum constructor is strict; the decoder is not.
			d.warn("invalid enum value, leaving field unset",
				zap.String("kind", owner), zap.String("field", f.Name), zap.Error(err))
			return
		}
		ev := reflect.New(f.Elem)
		ev.Elem().SetString(val)
		fv.Set(ev)

	case fieldTime:
		tv := ParseTimeValue(strings.TrimSpace(raw))
		fv.Set(reflect.ValueOf(&tv))

	case fieldTimeList:
		tv := ParseTimeValue(strings.TrimSpace(raw))
		fv.Set(reflect.Append(fv, reflect.ValueOf(tv)))

	case fieldStringList:
		fv.Set(reflect.Append(fv, reflect.ValueOf(strings.TrimSpace(raw))))

	case fieldCoord:
		coords := d.parseCoordinates(raw, owner, f.Name)
		if len(coords) == 0 {
			return
		}
		if len(coords) > 1 {
			d.warn("multiple coordinate tuples where one was expected, keeping the first",
				zap.String("kind", owner), zap.String("field", f.Name), zap.Int("count", len(coords)))
		}
		c := coords[0]
		fv.Set(reflect.ValueOf(&c))

	case fieldCoordList:
		coords := d.parseCoordinates(raw, owner, f.Name)
		if f.Sym == "gx_coord" {
			// One <gx:coord> child per tuple; repeated children accumulate.
			fv.Set(reflect.AppendSlice(fv, reflect.ValueOf(coords)))
		} else {
			fv.Set(reflect.ValueOf(coords))
		}

	default:
		// Unhandled declared type: warn, and fall back to raw text when the
		// field happens to be string-compatible.
		if fv.Kind() == reflect.String {
			d.warn("unhandled field type, storing raw text",
				zap.String("kind", owner), zap.String("field", f.Name))
			fv.SetString(raw)
			return
		}
		d.warn("unhandled field type, leaving field unset",
			zap.String("kind", owner), zap.String("field", f.Name))
	}
}

// parseCoordinates runs the coordinate codec over a text blob. Malformation
// warns and yields an empty list; blank input yields an empty list silently.
func (d *decoder) parseCoordinates(raw, owner, field string) Coordinates {
	vals, bad := coord.Parse(raw)
	if len(bad) > 0 {
		d.warn("skipping unparseable coordinate tokens",
			zap.String("kind", owner), zap.String("field", field), zap.Strings("tokens", bad))
	}
	tuples, status := coord.Group(vals)
	switch status {
	case coord.GroupEmpty:
		return nil
	case coord.GroupMalformed:
		d.warn("coordinate count fits neither 2D nor 3D grouping, dropping coordinates",
			zap.String("kind", owner), zap.String("field", field), zap.Int("count", len(vals)))
		return nil
	}
	coords := make(Coordinates, len(tuples))
	for i, t := range tuples {
		c := Coordinate{Lon: t[0], Lat: t[1]}
		if len(t) == 3 {
			c.Alt = t[2]
			c.HasAlt = true
		}
		coords[i] = c
	}
	return coords
}

// parseKMLBool is deliberately lenient: producers write 1/0, true/false in
// any case, and occasionally garbage. Anything unrecognized reads as false.
func parseKMLBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true":
		return true
	default:
		return false
	}
}
