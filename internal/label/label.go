// Package label renders ordered tag values as human-readable credit lists.
//
// A credit list reads the way a person would write it by hand:
//
//	label.JoinDefault([]string{"John", "Paul", "George"}) // "John, Paul & George"
//
// Custom separators are used where a list of alternatives must stand out
// from an ordinary list of names:
//
//	label.Join(names, " and by ", ", by ") // "A, by B and by C"
package label

import "strings"

const (
	// DefaultFinal separates the last value from the rest.
	DefaultFinal = " & "

	// DefaultJoiner separates all other values.
	DefaultJoiner = ", "
)

// Join concatenates values into a single label.
//
// All values except the last are joined with joiner, then final and the
// last value are appended:
//
//	Join(nil, " & ", ", ")                       // ""
//	Join([]string{"A"}, " & ", ", ")             // "A"
//	Join([]string{"A", "B", "C"}, " & ", ", ")   // "A, B & C"
func Join(values []string, final, joiner string) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	}

	last := len(values) - 1
	return strings.Join(values[:last], joiner) + final + values[last]
}

// JoinDefault is Join with DefaultFinal and DefaultJoiner.
func JoinDefault(values []string) string {
	return Join(values, DefaultFinal, DefaultJoiner)
}
