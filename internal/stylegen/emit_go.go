package stylegen

import (
	"fmt"
	"go/format"
	"path"
	"strconv"
	"strings"
)

const runtimePkg = "cssvariants"

// EmitGo renders a gofmt-ed Go file declaring one *cssvariants.Component per
// discovered component. The stylesheet itself is embedded as Stylesheet.
func EmitGo(sheet *Stylesheet, opts EmitOptions) ([]byte, error) {
	pkg := opts.Package
	if pkg == "" {
		pkg = DefaultPackage
	}
	runtime := opts.RuntimeImport
	if runtime == "" {
		runtime = DefaultGoRuntime
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// %s\n\n", generatedCodeWarning)
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import (\n")
	b.WriteString("\t_ \"embed\"\n")
	switch {
	case len(sheet.Components) == 0:
		// nothing references the runtime
	case path.Base(runtime) == runtimePkg:
		fmt.Fprintf(&b, "\n\t%s\n", strconv.Quote(runtime))
	default:
		fmt.Fprintf(&b, "\n\t%s %s\n", runtimePkg, strconv.Quote(runtime))
	}
	b.WriteString(")\n\n")

	b.WriteString("// Stylesheet is the source the components below were generated from.\n")
	fmt.Fprintf(&b, "//\n//go:embed %s\nvar Stylesheet string\n", embedPattern(opts.Stylesheet))

	for _, c := range sheet.Components {
		b.WriteString("\n")
		writeGoComponent(&b, c)
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated go: %w", err)
	}
	return src, nil
}

// embedPattern quotes names go:embed would otherwise split or reject.
func embedPattern(name string) string {
	if strings.ContainsAny(name, " \t\"`") {
		return strconv.Quote(name)
	}
	return name
}

func writeGoComponent(b *strings.Builder, c *Component) {
	q := strconv.Quote

	fmt.Fprintf(b, "// %s styles <%s> elements with the %s classes.\n", c.ExportName, c.Element, c.Name)
	fmt.Fprintf(b, "var %s = %s.Styled(%s.Element(%s), %s.Config{\n",
		c.ExportName, runtimePkg, runtimePkg, q(c.Element), runtimePkg)
	fmt.Fprintf(b, "CSS: %s.Class(%s),\n", runtimePkg, q(c.CSS))

	if len(c.Variants) > 0 {
		fmt.Fprintf(b, "Variants: %s.Variants{\n", runtimePkg)
		for _, v := range c.Variants {
			fmt.Fprintf(b, "%s: {\n", q(v.Name))
			for _, o := range v.Options {
				fmt.Fprintf(b, "%s: %s.Class(%s),\n", q(o.Value), runtimePkg, q(o.Class))
			}
			b.WriteString("},\n")
		}
		b.WriteString("},\n")
	}

	if len(c.Compounds) > 0 {
		fmt.Fprintf(b, "CompoundVariants: []%s.CompoundVariant{\n", runtimePkg)
		for _, compound := range c.Compounds {
			b.WriteString("{\nWhen: map[string]any{")
			for i, cond := range compound.When {
				if i > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(b, "%s: %s", q(cond.Variant), q(cond.Value))
			}
			b.WriteString("},\n")
			fmt.Fprintf(b, "CSS: %s.Class(%s),\n", runtimePkg, q(compound.Class))
			b.WriteString("},\n")
		}
		b.WriteString("},\n")
	}

	var defaults []string
	for _, v := range c.Variants {
		if v.Default != "" {
			defaults = append(defaults, q(v.Name), q(v.Default))
		}
	}
	if len(defaults) > 0 {
		fmt.Fprintf(b, "DefaultVariants: %s.NewProps(%s),\n", runtimePkg, strings.Join(defaults, ", "))
	}

	fmt.Fprintf(b, "}).Named(%s)\n", q(c.ExportName))
}
