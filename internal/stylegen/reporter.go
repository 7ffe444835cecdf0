package stylegen

import (
	"fmt"
	"io"
	"os"
)

// Reporter prints the outcome of a generation run.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: useColors,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintFile prints one line for a processed stylesheet.
func (r *Reporter) PrintFile(fr FileResult) {
	path := RenderStyle(PathStyle, fr.Output, r.useColors)

	switch {
	case fr.Skipped:
		fmt.Fprintf(r.w, "%s %s %s\n",
			RenderStyle(SkipStyle, "File", r.useColors), path,
			RenderStyle(SkipStyle, "already exists, skipping", r.useColors))
	case fr.Err != nil:
		fmt.Fprintf(r.w, "%s %s: %v\n",
			RenderStyle(ErrorStyle, "Failed to process", r.useColors),
			RenderStyle(PathStyle, fr.Source, r.useColors), fr.Err)
	default:
		fmt.Fprintf(r.w, "%s written to: %s\n",
			RenderStyle(CountStyle, pluralizeCount(fr.Components, "component", "components"), r.useColors),
			path)
	}
}

// PrintResult prints every file line followed by a summary.
func (r *Reporter) PrintResult(result *Result) {
	if result == nil {
		return
	}
	for _, fr := range result.Files {
		r.PrintFile(fr)
	}
	r.PrintSummary(result)
}

// PrintSummary prints the totals of a multi-file run and the overwrite hint.
func (r *Reporter) PrintSummary(result *Result) {
	if result == nil {
		return
	}

	if len(result.Files) > 1 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintf(r.w, "%s: %d written, %d skipped, %d failed\n",
			pluralizeCount(len(result.Files), "stylesheet", "stylesheets"),
			result.Written, result.Skipped, len(result.Files)-result.Written-result.Skipped)
	}

	if result.Skipped > 0 {
		fmt.Fprintln(r.w, RenderStyle(HintStyle, "Hint: Run with --overwrite to regenerate existing files", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
