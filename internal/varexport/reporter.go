package varexport

import (
	"fmt"
	"io"
	"os"
	"sort"

	engine "github.com/yacobolo/varexport"
)

// Reporter handles formatting and outputting export and check results
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a new reporter writing to w
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
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
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintExportSummary outputs export stats, rule issues and loader warnings
func (r *Reporter) PrintExportSummary(format engine.Format, result *engine.ExportResult, warnings []string) {
	fmt.Fprintf(r.w, "%s %s export\n",
		RenderStyle(StyleGreen, "✓", r.useColors), format)
	fmt.Fprintf(r.w, "  Collections: %d\n", result.CollectionsExported)
	fmt.Fprintf(r.w, "  Variables: %d\n", result.VariablesExported)
	if result.StylesExported > 0 {
		fmt.Fprintf(r.w, "  Styles: %d\n", result.StylesExported)
	}

	for _, issue := range result.RuleIssues {
		fmt.Fprintf(r.w, "%s rule %d (%q): %s\n",
			RenderStyle(StyleYellow, "  Warning:", r.useColors),
			issue.Index, issue.Pattern, issue.Message)
	}

	for _, w := range warnings {
		fmt.Fprintf(r.w, "%s %s\n",
			RenderStyle(StyleYellow, "  Warning:", r.useColors), w)
	}
}

// PrintCheckResult outputs check issues in file:line:col format followed
// by a summary line
func (r *Reporter) PrintCheckResult(path string, result *engine.CheckResult) {
	issues := make([]engine.CheckIssue, len(result.Issues))
	copy(issues, result.Issues)
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Line != issues[j].Line {
			return issues[i].Line < issues[j].Line
		}
		return issues[i].Column < issues[j].Column
	})

	for _, issue := range issues {
		location := fmt.Sprintf("%s:%d:%d:", path, issue.Line, issue.Column)
		style := StyleYellow
		if issue.Severity == engine.SeverityError {
			style = StyleRed
		}
		fmt.Fprintf(r.w, "%s %s %s\n",
			RenderStyle(StyleCyan, location, r.useColors),
			RenderStyle(style, issue.Severity+":", r.useColors),
			issue.Message)
	}

	fmt.Fprintf(r.w, "\n%s: %s, %s\n",
		path,
		pluralizeCount(result.CustomProperties, "custom property", "custom properties"),
		pluralizeCount(len(issues), "issue", "issues"))
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
