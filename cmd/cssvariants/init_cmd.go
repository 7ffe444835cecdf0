package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default " + defaultConfigFile + " config file",
	Long:  `Create a ` + defaultConfigFile + ` configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# cssvariants configuration
# Precedence: flags > CSSVARIANTS_* environment > this file > defaults

# Shared settings
verbose: false
quiet: false
color: false
log-format: console     # console | json

# Generation settings
generate:
  css: "src/**/*.css"   # path or glob, ** supported; .scss/.sass need Dart Sass
  output: styles.ts     # written next to each stylesheet; .go and .yaml switch format
  overwrite: false
  separator: "_"
  format: ""            # ts | go | yaml, empty = from output extension
  package: styles       # Go package of generated .go files
  runtime-import: ""    # empty = @phantomstudios/css-components (ts), github.com/yacobolo/cssvariants (go)
  sass-binary: ""       # empty = sass on PATH
  ignore-file: .gitignore
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
