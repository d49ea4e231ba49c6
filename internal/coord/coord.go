// Package coord tokenizes KML coordinate text into 2D or 3D tuples.
//
// KML encodes coordinate lists as text blobs of comma-separated numbers with
// whitespace between tuples ("lon,lat[,alt] lon,lat[,alt] ..."). Real-world
// producers are sloppy about which delimiter goes where: a well-known erratum
// puts a bare space after a zero altitude instead of a comma. The tokenizer
// therefore treats every run of delimiter characters identically, so an
// ambiguous "comma vs. space" boundary can never shift tuple alignment.
package coord

import "strconv"

// GroupStatus reports the outcome of grouping a flat value list into tuples.
type GroupStatus int

const (
	// GroupEmpty means there was nothing to group (blank or delimiter-only input).
	GroupEmpty GroupStatus = iota
	// GroupOK means the values divided evenly into 2D or 3D tuples.
	GroupOK
	// GroupMalformed means the value count fits neither 2D nor 3D grouping.
	GroupMalformed
)

// delimiter reports whether b separates number tokens.
// The delimiter set is [\t\n\r ,].
func delimiter(b byte) bool {
	switch b {
	case '\t', '\n', '\r', ' ', ',':
		return true
	}
	return false
}

// Tokenize splits s into runs of non-delimiter characters.
func Tokenize(s string) []string {
	var tokens []string
	start := -1 // start of the current number run, -1 while in a delimiter run
	for i := 0; i < len(s); i++ {
		if delimiter(s[i]) {
			if start >= 0 {
				tokens = append(tokens, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

// Parse tokenizes s and parses each token as a 64-bit float.
// Tokens that do not parse are returned in bad; they are not appended to vals.
func Parse(s string) (vals []float64, bad []string) {
	for _, tok := range Tokenize(s) {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			bad = append(bad, tok)
			continue
		}
		vals = append(vals, v)
	}
	return vals, bad
}

// Group packs a flat value list into tuples of width 3 or 2.
//
// A count divisible by 3 is grouped as 3D; otherwise a count divisible by 2
// is grouped as 2D. When the count is divisible by both (e.g. 6), the 3D
// interpretation wins. That tie-break is a documented convention inherited
// from how this data is produced in practice, not an inference that is
// provably right for malformed input.
func Group(vals []float64) (tuples [][]float64, status GroupStatus) {
	n := len(vals)
	switch {
	case n == 0:
		return nil, GroupEmpty
	case n%3 == 0:
		tuples = make([][]float64, 0, n/3)
		for i := 0; i < n; i += 3 {
			tuples = append(tuples, []float64{vals[i], vals[i+1], vals[i+2]})
		}
		return tuples, GroupOK
	case n%2 == 0:
		tuples = make([][]float64, 0, n/2)
		for i := 0; i < n; i += 2 {
			tuples = append(tuples, []float64{vals[i], vals[i+1]})
		}
		return tuples, GroupOK
	default:
		return nil, GroupMalformed
	}
}
