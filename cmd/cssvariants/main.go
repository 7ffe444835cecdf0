// Command cssvariants generates styled component definitions from
// stylesheets whose class names follow the component_variant_option
// convention.
//
// Usage:
//
//	cssvariants --css "src/**/*.css" [--output styles.ts] [--overwrite]
//
// See cssvariants --help for every flag.
package main

import (
	"fmt"
	"os"

	"github.com/yacobolo/cssvariants/internal/stylegen"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		useColors := stylegen.ShouldUseColors(getBoolWithFallback("color", "color", false))
		fmt.Fprintf(os.Stderr, "%s %v\n", stylegen.RenderStyle(stylegen.ErrorStyle, "Error:", useColors), err)
		os.Exit(1)
	}
}
