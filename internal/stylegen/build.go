package stylegen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/yacobolo/cssvariants"
)

// Build applies the component_variant_option naming convention to the
// extracted selectors. With sep "_":
//
//   - footer                          declares component footer (base only)
//   - footer_fixed                    ignored
//   - footer_theme_dark               variant theme, option dark
//   - footer_theme_light_default      variant theme, option light, default
//   - footer_fixed_true_theme_light   compound rule fixed=true, theme=light
//
// Components, variants, options and compound rules keep first-seen order.
func Build(selectors []Selector, sep string) *Stylesheet {
	sheet := &Stylesheet{index: make(map[string]*Component)}

	for _, sel := range selectors {
		chunks := strings.Split(sel.Class, sep)
		if len(chunks) == 2 || chunks[0] == "" {
			continue
		}

		component := sheet.component(chunks[0], sel.Element)

		switch {
		case len(chunks) == 3 || len(chunks) == 4:
			variant := component.variant(chunks[1])
			variant.setOption(chunks[2], sel.Class)
			if strings.HasSuffix(sel.Class, defaultMarker) {
				variant.Default = chunks[2]
			}
		case len(chunks) > 4:
			component.addCompound(pairConditions(chunks[1:]), sel.Class)
		}
	}

	sheet.assignExportNames()
	return sheet
}

// Component returns the component named name, or nil.
func (s *Stylesheet) Component(name string) *Component {
	return s.index[name]
}

// component returns the component named name, creating it on first sight.
func (s *Stylesheet) component(name, element string) *Component {
	if c, ok := s.index[name]; ok {
		if !c.hasElement && element != "" {
			c.Element = element
			c.hasElement = true
		}
		return c
	}

	c := &Component{
		Name:       name,
		Element:    element,
		CSS:        name,
		hasElement: element != "",
	}
	if element == "" {
		c.Element = DefaultElement
	}
	s.index[name] = c
	s.Components = append(s.Components, c)
	return c
}

// variant returns the variant named name, creating it on first sight.
func (c *Component) variant(name string) *Variant {
	for _, v := range c.Variants {
		if v.Name == name {
			return v
		}
	}
	v := &Variant{Name: name}
	c.Variants = append(c.Variants, v)
	return v
}

// setOption records value -> class, replacing an earlier class for the same
// value in place.
func (v *Variant) setOption(value, class string) {
	for i := range v.Options {
		if v.Options[i].Value == value {
			v.Options[i].Class = class
			return
		}
	}
	v.Options = append(v.Options, Option{Value: value, Class: class})
}

// addCompound records a compound rule once per class name.
func (c *Component) addCompound(when []Condition, class string) {
	for _, existing := range c.Compounds {
		if existing.Class == class {
			return
		}
	}
	c.Compounds = append(c.Compounds, Compound{When: when, Class: class})
}

// pairConditions pairs alternating variant/value tokens. A dangling trailing
// token is dropped; a repeated variant keeps its first position and its last
// value.
func pairConditions(tokens []string) []Condition {
	conditions := make([]Condition, 0, len(tokens)/2)
next:
	for i := 0; i+1 < len(tokens); i += 2 {
		for j := range conditions {
			if conditions[j].Variant == tokens[i] {
				conditions[j].Value = tokens[i+1]
				continue next
			}
		}
		conditions = append(conditions, Condition{Variant: tokens[i], Value: tokens[i+1]})
	}
	return conditions
}

// assignExportNames sets ExportName, resolving collisions with numeric
// suffixes. Stylesheet is taken by the embedded source in generated Go.
func (s *Stylesheet) assignExportNames() {
	seen := map[string]int{"Stylesheet": 1}
	for _, c := range s.Components {
		name := toExportName(c.Name)
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s%d", name, n)
		}
		c.ExportName = name
	}
}

// toExportName converts a component token to PascalCase:
// almostEmpty -> AlmostEmpty, nav-bar -> NavBar.
func toExportName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})

	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}

	result := strings.Join(parts, "")
	if result == "" {
		return "Component"
	}
	if !unicode.IsLetter([]rune(result)[0]) {
		result = "C" + result
	}
	return result
}

// Config converts the component into the runtime configuration.
func (c *Component) Config() cssvariants.Config {
	cfg := cssvariants.Config{
		CSS: cssvariants.Class(c.CSS),
	}

	if len(c.Variants) > 0 {
		cfg.Variants = make(cssvariants.Variants, len(c.Variants))
	}
	for _, v := range c.Variants {
		options := make(cssvariants.Options, len(v.Options))
		for _, o := range v.Options {
			options[o.Value] = cssvariants.Class(o.Class)
		}
		cfg.Variants[v.Name] = options

		if v.Default != "" {
			cfg.DefaultVariants.Set(v.Name, v.Default)
		}
	}

	for _, compound := range c.Compounds {
		when := make(map[string]any, len(compound.When))
		for _, cond := range compound.When {
			when[cond.Variant] = cond.Value
		}
		cfg.CompoundVariants = append(cfg.CompoundVariants, cssvariants.CompoundVariant{
			When: when,
			CSS:  cssvariants.Class(compound.Class),
		})
	}

	return cfg
}
