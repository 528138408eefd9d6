package varexport

import (
	"sort"
	"strings"
)

// ExportSCSS renders the graph as flat SCSS variable declarations. SCSS
// has no selector wrapping and no mode axis, so default-mode values are
// emitted. Alias references arrive from the resolver as CSS var() tokens
// and are rewritten to $name form.
func ExportSCSS(g *Graph, opts Options) (string, *ExportResult) {
	result := newExportResult(opts)
	namer := opts.formatter()
	collections := g.FilterCollections(opts.SelectedCollections)
	styles := exportStyles(g, opts)

	if !hasTokens(collections, g, styles) {
		return noVariablesCSS, result
	}

	var b strings.Builder

	for _, c := range collections {
		vars := g.VariablesIn(c.ID)
		if len(vars) == 0 {
			continue
		}
		sortByFormattedName(vars, namer)
		result.CollectionsExported++
		result.VariablesExported += len(vars)

		if opts.Comments {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString("// Collection: " + c.Name + "\n")
		}

		modeID := c.DefaultMode().ID
		for _, v := range vars {
			val, ok := valueForMode(v, modeID, c)
			if !ok {
				continue
			}

			cfg := opts.tokenConfig(v.Description)
			text := ResolveValue(val, modeID, g, v.Type, cfg, namer, 0, nil)

			if opts.Comments && v.Description != "" {
				b.WriteString("// " + firstLine(v.Description) + "\n")
			}
			b.WriteString("$" + namer.Format(v.Name) + ": " + RewriteVarRefs(text) + ";\n")
		}
	}

	writeSCSSStyles(&b, styles, opts, namer, result)

	return b.String(), result
}

// writeSCSSStyles appends color styles as $name declarations
func writeSCSSStyles(b *strings.Builder, styles []*Style, opts Options, namer NameFormatter, result *ExportResult) {
	if len(styles) == 0 {
		return
	}

	sorted := make([]*Style, len(styles))
	copy(sorted, styles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return namer.Format(sorted[i].Name) < namer.Format(sorted[j].Name)
	})

	if opts.Comments {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("// Styles\n")
	}
	for _, s := range sorted {
		b.WriteString("$" + namer.Format(s.Name) + ": " + resolveStyleValue(s, opts) + ";\n")
	}
	result.StylesExported += len(sorted)
}

// RewriteVarRefs rewrites every CSS var(--name[, fallback]) token in a
// value to the SCSS $name token, discarding fallback expressions.
//
// This is a single-pass balanced-parenthesis scanner, not a regex: the
// fallback may itself contain function calls with nested parentheses
// (e.g. var(--foo, rgb(0,0,0))), which a naive regex would mis-parse.
func RewriteVarRefs(s string) string {
	const open = "var(--"

	var b strings.Builder
	i := 0

	for i < len(s) {
		if !strings.HasPrefix(s[i:], open) {
			b.WriteByte(s[i])
			i++
			continue
		}

		// Capture the identifier after var(--
		j := i + len(open)
		start := j
		for j < len(s) && isIdentByte(s[j]) {
			j++
		}
		name := s[start:j]

		// Skip forward tracking paren depth until the var() call closes,
		// discarding any fallback expression along the way
		depth := 1
		for j < len(s) && depth > 0 {
			switch s[j] {
			case '(':
				depth++
			case ')':
				depth--
			}
			j++
		}

		b.WriteString("$" + name)
		i = j
	}

	return b.String()
}

// isIdentByte reports whether a byte can appear in a custom property name
func isIdentByte(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
