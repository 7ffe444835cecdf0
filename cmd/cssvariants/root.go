package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/cssvariants/internal/logger"
	"github.com/yacobolo/cssvariants/internal/stylegen"
)

const defaultConfigFile = ".cssvariants.yaml"

var rootCmd = &cobra.Command{
	Use:   "cssvariants",
	Short: "Generate styled components from CSS class naming conventions",
	Long: `Scan stylesheets for component_variant_option class names and write a
styled component definition next to each one.

  .footer                          base class of Footer
  .footer_theme_dark               variant theme, option dark
  .footer_theme_light_default      variant theme, option light (default)
  .footer_fixed_true_theme_light   compound rule fixed=true, theme=light`,
	// Default behavior: run generate when no subcommand is given.
	// We must call loadConfig here because PreRunE of generateCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.BoolP("quiet", "q", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("log-format", logger.FormatConsole, "Log format: console|json")
	pf.String("config", defaultConfigFile, "Config file path")

	// Generation is the default action, so the root command takes the
	// generate flags too.
	addGenerateFlags(rootCmd.Flags())

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// addGenerateFlags registers the generation flags on f.
func addGenerateFlags(f *pflag.FlagSet) {
	f.String("css", "", "Path or glob of the stylesheets to read (required)")
	f.StringP("output", "o", stylegen.DefaultOutput, "File name written next to each stylesheet")
	f.Bool("overwrite", false, "Overwrite existing output files")
	f.String("separator", stylegen.DefaultSeparator, "Word separator inside class names")
	f.String("format", "", "Output format: ts|go|yaml (default: from --output extension)")
	f.String("package", stylegen.DefaultPackage, "Go package name of generated files")
	f.String("runtime-import", "", "Import path of the styling runtime")
	f.String("sass-binary", "", "Dart Sass executable used for .scss/.sass files (default: sass on PATH)")
	f.String("ignore-file", stylegen.DefaultIgnoreFile, "Gitignore-style file of paths to skip")
}
