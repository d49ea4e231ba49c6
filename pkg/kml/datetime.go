package kml

import (
	"fmt"
	"sync"
	"time"
)

// TimeValue is a KML timestamp.
//
// KML time primitives accept a full dateTime with zone, a dateTime without
// zone, a bare date, a year-month, or a bare year. Producers also emit text
// that is none of these; rather than fail, an unparseable value keeps its
// original text so it survives a round trip unchanged.
type TimeValue struct {
	// Time is the parsed instant. Only meaningful when Layout is non-empty.
	Time time.Time
	// Layout is the time layout that matched during parsing, empty when the
	// raw text did not parse. The encoder reuses it so "2011-05" does not
	// come back as a full dateTime.
	Layout string
	// Raw is the original text, kept verbatim for unparseable values.
	Raw string
}

// kmlTimeLayouts is the ordered attempt list for KML time primitives.
// Order matters: the most specific layout is tried first and the first
// match wins.
var kmlTimeLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

// ParseTimeValue parses raw against the KML time layouts in order.
// It never fails: when nothing matches, the result carries only Raw.
func ParseTimeValue(raw string) TimeValue {
	for _, layout := range kmlTimeLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		// Re-home zoned instants into the shared fixed-zone cache so repeated
		// parses of the same offset share one Location value.
		if _, offset := t.Zone(); offset != 0 {
			t = t.In(fixedZone(offset))
		}
		return TimeValue{Time: t, Layout: layout, Raw: raw}
	}
	return TimeValue{Raw: raw}
}

// IsParsed reports whether the value carries a parsed instant.
func (tv TimeValue) IsParsed() bool { return tv.Layout != "" }

// String renders the value back to KML text: the parsed instant in its
// original layout, or the raw text when parsing failed.
func (tv TimeValue) String() string {
	if tv.Layout != "" {
		return tv.Time.Format(tv.Layout)
	}
	return tv.Raw
}

// zoneCache shares time.Location values across coercion calls. Location
// construction is comparatively expensive and timestamps in a track-heavy
// document repeat the same offset thousands of times. Lock discipline:
// acquire around read-or-insert, release immediately, no nested locking.
var zoneCache = struct {
	mu    sync.Mutex
	zones map[int]*time.Location
}{zones: make(map[int]*time.Location)}

// fixedZone returns a cached fixed zone for the given offset in seconds.
func fixedZone(offsetSeconds int) *time.Location {
	zoneCache.mu.Lock()
	defer zoneCache.mu.Unlock()
	if loc, ok := zoneCache.zones[offsetSeconds]; ok {
		return loc
	}
	sign := "+"
	off := offsetSeconds
	if off < 0 {
		sign = "-"
		off = -off
	}
	name := fmt.Sprintf("UTC%s%02d:%02d", sign, off/3600, (off%3600)/60)
	loc := time.FixedZone(name, offsetSeconds)
	zoneCache.zones[offsetSeconds] = loc
	return loc
}
