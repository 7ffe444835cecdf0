package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssvariants/internal/logger"
	"github.com/yacobolo/cssvariants/internal/stylegen"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate styled components from stylesheets",
	Long: `Read every stylesheet matched by --css, infer its components from the
class names and write --output next to it. Existing outputs are skipped
unless --overwrite is given.`,
	Example: `  cssvariants generate --css "src/**/*.css"
  cssvariants generate --css "ui/**/*.scss" --output styles.go --package ui`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd.Flags())
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	quiet := getBoolWithFallback("quiet", "quiet", false)

	log, err := logger.New(logger.Options{
		Level:  logger.Level(getBoolWithFallback("verbose", "verbose", false), quiet),
		Format: getStringWithFallback("log-format", "log-format", logger.FormatConsole),
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	compiler := stylegen.NewSassCompiler(getStringWithFallback("sass-binary", "generate.sass-binary", ""))
	defer func() {
		if err := compiler.Close(); err != nil {
			log.Error(err, "stopping sass compiler")
		}
	}()

	opts := buildGenerateOptions()
	opts.Compiler = compiler

	log.WithFields(map[string]any{
		"css":    opts.CSS,
		"output": opts.Output,
		"format": stylegen.DetermineFormat(opts.Format, opts.Output),
	}).Debug("generating")

	result, err := stylegen.Run(opts)
	if result != nil {
		report(cmd, log, result, quiet)
	}
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	return nil
}

// report prints written and skipped files and logs failed ones.
func report(cmd *cobra.Command, log *logger.Logger, result *stylegen.Result, quiet bool) {
	var reporter *stylegen.Reporter
	if !quiet {
		reporter = stylegen.NewReporter(cmd.OutOrStdout(),
			stylegen.ShouldUseColors(getBoolWithFallback("color", "color", false)))
	}

	for _, fr := range result.Files {
		fields := log.WithFields(map[string]any{"source": fr.Source, "output": fr.Output})
		if fr.Err != nil {
			fields.Error(fr.Err, "failed to process stylesheet")
			continue
		}
		fields.WithFields(map[string]any{"components": fr.Components, "skipped": fr.Skipped}).Debug("stylesheet processed")
		if reporter != nil {
			reporter.PrintFile(fr)
		}
	}

	if reporter != nil {
		reporter.PrintSummary(result)
	}
}
