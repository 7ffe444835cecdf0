package cssvariants

import "strings"

// CSS is a set of class names applied together, in order.
// A single class is a one-element CSS.
type CSS []string

// Class builds a CSS value from one or more class names.
func Class(names ...string) CSS {
	return CSS(names)
}

// String returns the space-joined class list.
func (c CSS) String() string {
	return Flatten(c)
}

// IsEmpty reports whether the value contributes no class.
func (c CSS) IsEmpty() bool {
	return Flatten(c) == ""
}

// Flatten joins the class names with single spaces in their original order.
// Empty names are skipped so no stray whitespace ends up in the result;
// duplicates are kept.
func Flatten(c CSS) string {
	switch len(c) {
	case 0:
		return ""
	case 1:
		return c[0]
	}

	parts := make([]string, 0, len(c))
	for _, name := range c {
		if name == "" {
			continue
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, " ")
}
