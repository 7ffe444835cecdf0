package cssvariants

// compoundCSSKey is reserved in compound rules for the style itself and is
// never compared against props.
const compoundCSSKey = "css"

// Matches reports whether every constraint of rule holds for props.
// Values are compared in their serialized form, so true and "true" are equal.
// A constraint on an absent prop only holds when the constraint value is nil.
func Matches(rule CompoundVariant, props Props) bool {
	for key, want := range rule.When {
		if key == compoundCSSKey {
			continue
		}
		got, ok := props.Get(key)
		if !ok {
			if want != nil {
				return false
			}
			continue
		}
		if FormatValue(got) != FormatValue(want) {
			return false
		}
	}
	return true
}

// Matches is shorthand for Matches(rule, props).
func (rule CompoundVariant) Matches(props Props) bool {
	return Matches(rule, props)
}

// MatchingCompoundVariants returns the rules matching props, in declaration
// order.
func MatchingCompoundVariants(rules []CompoundVariant, props Props) []CompoundVariant {
	var matched []CompoundVariant
	for _, rule := range rules {
		if Matches(rule, props) {
			matched = append(matched, rule)
		}
	}
	return matched
}
