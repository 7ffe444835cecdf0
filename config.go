package cssvariants

import "slices"

// Options maps serialized option values ("primary", "true", "0") to the
// style applied when a variant resolves to that value.
type Options map[string]CSS

// Variants maps variant names ("size", "color") to their options.
type Variants map[string]Options

// CompoundVariant applies CSS when every variant listed in When resolves to
// the given value. A rule with an empty When matches unconditionally.
type CompoundVariant struct {
	When map[string]any
	CSS  CSS
}

// Config describes how a component turns props into class names.
// A Config is treated as immutable once handed to Styled or Resolve.
type Config struct {
	// CSS is the base style, always applied.
	CSS CSS
	// Variants are the named style axes.
	Variants Variants
	// CompoundVariants are evaluated in order after all variants.
	CompoundVariants []CompoundVariant
	// DefaultVariants supply values for variants the caller leaves out.
	DefaultVariants Props
	// Passthrough lists variant names that are still forwarded to the
	// element after being consumed for styling.
	Passthrough []string
}

// IsVariant reports whether key names a configured variant.
func (c Config) IsVariant(key string) bool {
	_, ok := c.Variants[key]
	return ok
}

// Style returns the style configured for variant key at value.
func (c Config) Style(key string, value any) (CSS, bool) {
	options, ok := c.Variants[key]
	if !ok {
		return nil, false
	}
	css, ok := options[FormatValue(value)]
	return css, ok
}

// forwards reports whether a resolved prop reaches the element.
func (c Config) forwards(key string) bool {
	if !c.IsVariant(key) {
		return true
	}
	return slices.Contains(c.Passthrough, key)
}
