// Package stylegen derives cssvariants configurations from stylesheets whose
// class names follow the component_variant_option convention, and writes
// them out as TypeScript, Go or YAML next to each stylesheet.
package stylegen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Generate extracts and builds the components of one stylesheet's CSS text.
func Generate(content, sep string) *Stylesheet {
	return Build(Extract(content), sep)
}

// Run is the main entry point: it expands opts.CSS and generates one output
// file per matched stylesheet.
//
// Existing outputs are skipped unless opts.Overwrite is set. A stylesheet
// that cannot be read or compiled is recorded as a warning and the run moves
// on; a failed write stops the run and returns the partial result with the
// error.
func Run(opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// 1. Find stylesheets
	files, err := FindFiles(opts.CSS, opts.IgnoreFile)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, opts.CSS)
	}

	format := DetermineFormat(opts.Format, opts.Output)
	result := &Result{}

	// 2. Generate each one
	for _, file := range files {
		fr := processFile(file, format, opts)
		result.Files = append(result.Files, fr)

		var werr *writeError
		switch {
		case fr.Skipped:
			result.Skipped++
		case errors.As(fr.Err, &werr):
			return result, werr.err
		case fr.Err != nil:
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to process %s: %v", file, fr.Err))
		default:
			result.Written++
		}
	}

	return result, nil
}

// writeError marks failures that abort the run.
type writeError struct {
	err error
}

func (e *writeError) Error() string { return e.err.Error() }
func (e *writeError) Unwrap() error { return e.err }

// processFile generates the output for one stylesheet.
func processFile(file string, format Format, opts Options) FileResult {
	fr := FileResult{
		Source: file,
		Output: OutputPath(file, opts.Output),
	}

	if _, err := os.Stat(fr.Output); err == nil && !opts.Overwrite {
		fr.Skipped = true
		return fr
	}

	content, err := ReadStylesheet(file, opts.Compiler)
	if err != nil {
		fr.Err = err
		return fr
	}

	sheet := Generate(content, opts.Separator)
	out, err := Emit(sheet, format, EmitOptions{
		Stylesheet:    filepath.Base(file),
		Package:       opts.Package,
		RuntimeImport: opts.RuntimeImport,
	})
	if err != nil {
		fr.Err = err
		return fr
	}

	if err := os.WriteFile(fr.Output, out, 0o644); err != nil {
		fr.Err = &writeError{err: fmt.Errorf("write %s: %w", fr.Output, err)}
		return fr
	}

	fr.Components = len(sheet.Components)
	return fr
}
