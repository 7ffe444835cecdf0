// Package cssvariants attaches CSS class names to rendered elements from a
// declarative variant configuration.
//
// A component is defined once from a base style, named variants, compound
// variants and default values:
//
//	var Button = cssvariants.Styled(cssvariants.Element("button"), cssvariants.Config{
//		CSS: cssvariants.Class("root"),
//		Variants: cssvariants.Variants{
//			"border": {"true": cssvariants.Class("borderTrue")},
//			"color":  {"primary": cssvariants.Class("colorPrimary")},
//		},
//		CompoundVariants: []cssvariants.CompoundVariant{
//			{When: map[string]any{"border": true, "color": "primary"}, CSS: cssvariants.Class("borderPrimary")},
//		},
//		DefaultVariants: cssvariants.NewProps("color", "primary"),
//	})
//
// and rendered as often as needed:
//
//	node := Button.Render(cssvariants.NewProps("border", true), nil, cssvariants.Text("Save"))
//	// <button class="root colorPrimary borderTrue borderPrimary">Save</button>
//
// # Resolution order
//
// The class string is the caller's className, then the base style, then
// variant styles in prop order, then matching compound variants in
// declaration order. Variant props are consumed by styling and only reach the
// element when listed in Config.Passthrough; every other prop is forwarded.
//
// # Generation
//
// Configurations can be generated from a stylesheet that follows the
// component_variant_option naming convention with the cssvariants CLI:
//
//	go install github.com/yacobolo/cssvariants/cmd/cssvariants@latest
//	cssvariants --css "web/**/*.module.css" --output styles.go
//
// Resolution is pure: a Config is never mutated, so components are safe to
// render from many goroutines at once.
package cssvariants
