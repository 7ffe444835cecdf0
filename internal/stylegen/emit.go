package stylegen

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// EmitOptions carries what emitters need besides the stylesheet.
type EmitOptions struct {
	Stylesheet    string // file name of the source stylesheet, e.g. "test.css"
	Package       string // Go package name (FormatGo)
	RuntimeImport string // import path of the styling runtime
}

var jsIdent = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// DetermineFormat picks the output format: the explicit format wins,
// otherwise it is inferred from the output file extension.
func DetermineFormat(format Format, output string) Format {
	if format != "" {
		return format
	}
	switch strings.ToLower(filepath.Ext(output)) {
	case ".go":
		return FormatGo
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTS
	}
}

// Emit renders sheet in the given format.
func Emit(sheet *Stylesheet, format Format, opts EmitOptions) ([]byte, error) {
	switch format {
	case FormatTS:
		return EmitTS(sheet, opts), nil
	case FormatGo:
		return EmitGo(sheet, opts)
	case FormatYAML:
		return EmitYAML(sheet)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// EmitTS renders a TypeScript module: the runtime and stylesheet imports,
// then one exported styled component per discovered component.
func EmitTS(sheet *Stylesheet, opts EmitOptions) []byte {
	runtime := opts.RuntimeImport
	if runtime == "" {
		runtime = DefaultTSRuntime
	}

	var b strings.Builder
	fmt.Fprintf(&b, "import { styled } from %s;\n\n", strconv.Quote(runtime))
	fmt.Fprintf(&b, "import css from %s;\n\n", strconv.Quote("./"+opts.Stylesheet))

	for _, c := range sheet.Components {
		fmt.Fprintf(&b, "export const %s = styled(%s, {\n", c.ExportName, strconv.Quote(c.Element))
		fmt.Fprintf(&b, "  css: %s,\n", tsClassRef(c.CSS))

		if len(c.Variants) > 0 {
			b.WriteString("  variants: {\n")
			for _, v := range c.Variants {
				fmt.Fprintf(&b, "    %s: {\n", tsKey(v.Name))
				for _, o := range v.Options {
					fmt.Fprintf(&b, "      %s: %s,\n", tsKey(o.Value), tsClassRef(o.Class))
				}
				b.WriteString("    },\n")
			}
			b.WriteString("  },\n")
		}

		if len(c.Compounds) > 0 {
			b.WriteString("  compoundVariants: [\n")
			for _, compound := range c.Compounds {
				b.WriteString("    {\n")
				for _, cond := range compound.When {
					fmt.Fprintf(&b, "      %s: %s,\n", tsKey(cond.Variant), strconv.Quote(cond.Value))
				}
				fmt.Fprintf(&b, "      css: %s,\n", tsClassRef(compound.Class))
				b.WriteString("    },\n")
			}
			b.WriteString("  ],\n")
		}

		if len(c.Variants) > 0 {
			b.WriteString("  defaultVariants: {\n")
			for _, v := range c.Variants {
				if v.Default != "" {
					fmt.Fprintf(&b, "    %s: %s,\n", tsKey(v.Name), strconv.Quote(v.Default))
				}
			}
			b.WriteString("  },\n")
		}

		b.WriteString("});\n")
	}

	return []byte(b.String())
}

// tsKey renders an object key, quoting it when it is not an identifier.
func tsKey(key string) string {
	if jsIdent.MatchString(key) || isDigits(key) {
		return key
	}
	return strconv.Quote(key)
}

// tsClassRef renders a property access on the CSS module import.
func tsClassRef(class string) string {
	if jsIdent.MatchString(class) {
		return "css." + class
	}
	return "css[" + strconv.Quote(class) + "]"
}

func isDigits(s string) bool {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
