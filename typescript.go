package varexport

import (
	"sort"
	"strings"
)

// ExportTypeScript renders a union type of quoted custom-property name
// literals plus an ambient module augmentation exposing the union on
// style property maps. No value resolution happens here: names only.
func ExportTypeScript(g *Graph, opts Options) (string, *ExportResult) {
	result := newExportResult(opts)
	namer := opts.formatter()
	collections := g.FilterCollections(opts.SelectedCollections)
	styles := exportStyles(g, opts)

	if !hasTokens(collections, g, styles) {
		return "// No variables found\n", result
	}

	var names []string
	for _, c := range collections {
		vars := g.VariablesIn(c.ID)
		if len(vars) == 0 {
			continue
		}
		result.CollectionsExported++
		result.VariablesExported += len(vars)
		for _, v := range vars {
			names = append(names, "--"+namer.Format(v.Name))
		}
	}
	for _, s := range styles {
		names = append(names, "--"+namer.Format(s.Name))
	}
	result.StylesExported += len(styles)

	sort.Strings(names)
	names = dedupeStrings(names)

	var b strings.Builder
	b.WriteString("export type TokenName =\n")
	for i, name := range names {
		b.WriteString("  | '" + name + "'")
		if i == len(names)-1 {
			b.WriteString(";")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString("declare module 'csstype' {\n")
	b.WriteString("  interface Properties {\n")
	b.WriteString("    [index: TokenName]: string | number;\n")
	b.WriteString("  }\n")
	b.WriteString("}\n")

	return b.String(), result
}

// dedupeStrings removes adjacent duplicates from a sorted slice
func dedupeStrings(s []string) []string {
	out := s[:0]
	for i, v := range s {
		if i == 0 || v != s[i-1] {
			out = append(out, v)
		}
	}
	return out
}
