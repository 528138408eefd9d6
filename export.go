package varexport

import "fmt"

// Export is the main entry point: it renders the variable graph into one
// output format. The returned error only signals an unknown format;
// malformed domain data never errors, it degrades to inline markers in
// the output text.
func Export(graph *Graph, format Format, opts Options) (string, *ExportResult, error) {
	switch format {
	case FormatCSS:
		out, result := ExportCSS(graph, opts)
		return out, result, nil
	case FormatSCSS:
		out, result := ExportSCSS(graph, opts)
		return out, result, nil
	case FormatJSON:
		out, result := ExportJSON(graph, opts)
		return out, result, nil
	case FormatTypeScript:
		out, result := ExportTypeScript(graph, opts)
		return out, result, nil
	default:
		return "", nil, fmt.Errorf("unknown export format %q", format)
	}
}

// newExportResult builds the shared result record, including per-rule
// validation issues surfaced to the caller
func newExportResult(opts Options) *ExportResult {
	return &ExportResult{
		RuleIssues: ValidateRules(opts.Rules),
	}
}

// exportStyles returns the styles to append, or nil when styles are
// excluded by the options
func exportStyles(g *Graph, opts Options) []*Style {
	if !opts.IncludeStyles {
		return nil
	}
	return g.Styles
}

// hasTokens reports whether the filtered traversal set yields any output
func hasTokens(collections []*Collection, g *Graph, styles []*Style) bool {
	if len(styles) > 0 {
		return true
	}
	for _, c := range collections {
		if len(g.VariablesIn(c.ID)) > 0 {
			return true
		}
	}
	return false
}

// firstLine truncates a description to its first line for comment output
func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' || s[i] == '\r' {
			return s[:i]
		}
	}
	return s
}
