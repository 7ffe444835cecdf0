package cssvariants

import "strings"

// Resolved is the outcome of resolving props against a Config.
type Resolved struct {
	// ClassName is the final space-joined class string. It may be empty.
	ClassName string
	// Props are the props forwarded to the element. They always carry
	// ClassNameKey set to ClassName.
	Props Props
	// Values are the merged defaults and caller props the styles were
	// resolved from.
	Values Props
	// Ref is the caller's reference handle, forwarded untouched.
	Ref Ref
}

// Resolve computes the class string and forwarded props for props.
// It never fails: unknown props pass through, and variant values without a
// configured option contribute nothing.
func Resolve(cfg Config, props Props) Resolved {
	return cfg.Resolve(props)
}

// Resolve computes the class string and forwarded props for props.
//
// Classes are accumulated in this order:
//  1. the caller's className, if any
//  2. the base CSS
//  3. variant styles, in prop iteration order
//  4. matching compound variants, in declaration order
func (c Config) Resolve(props Props) Resolved {
	values := Merge(c.DefaultVariants, props)

	var classes []string
	push := func(class string) {
		if class != "" {
			classes = append(classes, class)
		}
	}

	push(values.Value(ClassNameKey))
	push(Flatten(c.CSS))

	var forwarded Props
	for key, value := range values.All() {
		if css, ok := c.Style(key, value); ok {
			push(Flatten(css))
		}
		if c.forwards(key) {
			forwarded.Set(key, value)
		}
	}

	for _, rule := range c.CompoundVariants {
		if Matches(rule, values) {
			push(Flatten(rule.CSS))
		}
	}

	className := strings.Join(classes, " ")
	forwarded.Set(ClassNameKey, className)

	return Resolved{
		ClassName: className,
		Props:     forwarded,
		Values:    values,
	}
}
