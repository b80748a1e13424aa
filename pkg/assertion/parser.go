package assertion

import "strings"

// ParseList splits a compact assertion list into names. Names
// may be separated by commas, pipes or whitespace; empty items
// are dropped and order is preserved.
//
// Examples:
//
//	"defined,notNull"         -> ["defined", "notNull"]
//	"string | notEmpty"       -> ["string", "notEmpty"]
//	""                        -> []
func ParseList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' ||
			r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
