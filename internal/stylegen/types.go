package stylegen

import "errors"

// Selector is an element.class pair found in a stylesheet.
// Element is empty for a bare .class selector.
type Selector struct {
	Element string
	Class   string
}

// Stylesheet holds the components discovered in one stylesheet, in the
// order they were first seen.
type Stylesheet struct {
	Components []*Component
	index      map[string]*Component
}

// Component is one styled component inferred from class names.
type Component struct {
	Name       string // "footer", the component token
	ExportName string // "Footer"
	Element    string // "footer"; "div" when no selector named one
	CSS        string // base class, same as Name
	Variants   []*Variant
	Compounds  []Compound

	hasElement bool
}

// Variant is one style axis of a component.
type Variant struct {
	Name    string
	Options []Option
	Default string // option value marked as default, "" when none
}

// Option maps a variant value to the class applying it.
type Option struct {
	Value string
	Class string
}

// Compound applies Class when every condition holds.
type Compound struct {
	When  []Condition
	Class string
}

// Condition pins a variant to a value inside a compound rule.
type Condition struct {
	Variant string
	Value   string
}

// Format selects the generated output language.
type Format string

// Output formats
const (
	// FormatTS generates a TypeScript module for the CSS Modules runtime.
	FormatTS Format = "ts"
	// FormatGo generates a Go file of cssvariants components.
	FormatGo Format = "go"
	// FormatYAML dumps the component configurations as YAML.
	FormatYAML Format = "yaml"
)

// Defaults
const (
	DefaultSeparator     = "_"
	DefaultOutput        = "styles.ts"
	DefaultElement       = "div"
	DefaultPackage       = "styles"
	DefaultTSRuntime     = "@phantomstudios/css-components"
	DefaultGoRuntime     = "github.com/yacobolo/cssvariants"
	DefaultIgnoreFile    = ".gitignore"
	defaultMarker        = "default"
	generatedCodeWarning = "Code generated by cssvariants. DO NOT EDIT."
)

// Sentinel errors
var (
	ErrNoFiles           = errors.New("no stylesheet matched")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrSassUnavailable   = errors.New("sass compiler unavailable")
)

// Options configures a generation run.
type Options struct {
	CSS           string   `validate:"required"`                   // path or glob of stylesheets
	Output        string   `validate:"required"`                   // file name written next to each stylesheet
	Overwrite     bool                                              // regenerate existing outputs
	Separator     string   `validate:"required,excludes=."`        // word separator inside class names
	Format        Format   `validate:"omitempty,oneof=ts go yaml"` // inferred from Output when empty
	Package       string   `validate:"omitempty,gopkg"`            // Go package of generated files
	RuntimeImport string                                            // import path of the styling runtime
	IgnoreFile    string                                            // gitignore-style file of paths to skip
	Compiler      Compiler `validate:"-"`                          // compiles .scss/.sass, optional
}

// FileResult reports what happened to one stylesheet.
type FileResult struct {
	Source     string
	Output     string
	Components int
	Skipped    bool
	Err        error
}

// Result contains generation stats.
type Result struct {
	Files    []FileResult
	Written  int
	Skipped  int
	Warnings []string
}
