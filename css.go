package varexport

import (
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/mazznoer/csscolorparser"
)

// noVariablesCSS is the empty-input marker shared by the CSS and SCSS
// emitters. Callers detect "nothing to export" from it without any
// exception handling.
const noVariablesCSS = "/* No variables found */\n"

// ExportCSS renders the graph as CSS custom properties wrapped in one
// selector block, or one block per mode when ModesAsSelectors is set.
func ExportCSS(g *Graph, opts Options) (string, *ExportResult) {
	result := newExportResult(opts)
	namer := opts.formatter()
	collections := g.FilterCollections(opts.SelectedCollections)
	styles := exportStyles(g, opts)

	if !hasTokens(collections, g, styles) {
		return noVariablesCSS, result
	}

	var b strings.Builder

	if opts.ModesAsSelectors {
		writeModeBlocks(&b, collections, g, opts, namer, result)
	} else {
		b.WriteString(opts.selector() + " {\n")
		for _, c := range collections {
			vars := g.VariablesIn(c.ID)
			if len(vars) == 0 {
				continue
			}
			sortByFormattedName(vars, namer)
			result.CollectionsExported++
			result.VariablesExported += len(vars)

			if opts.Comments {
				b.WriteString("  /* Collection: " + c.Name + " */\n")
			}
			writeCSSVariables(&b, vars, c.DefaultMode().ID, c, g, opts, namer)
		}
		writeCSSStyles(&b, styles, opts, namer, result)
		b.WriteString("}\n")
	}

	return b.String(), result
}

// writeModeBlocks emits one selector block per collection mode. The
// default mode uses the bare selector; every other mode adds a
// data-theme qualifier derived from the mode's display name.
func writeModeBlocks(b *strings.Builder, collections []*Collection, g *Graph, opts Options, namer NameFormatter, result *ExportResult) {
	styles := exportStyles(g, opts)

	for _, c := range collections {
		vars := g.VariablesIn(c.ID)
		if len(vars) == 0 {
			continue
		}
		sortByFormattedName(vars, namer)
		result.CollectionsExported++
		result.VariablesExported += len(vars)

		modes := c.Modes
		if len(modes) == 0 {
			modes = []Mode{{}}
		}

		for _, m := range modes {
			selector := opts.selector()
			if m.ID != c.DefaultMode().ID {
				selector += `[data-theme="` + themeName(m.Name) + `"]`
			}

			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			if opts.Comments {
				b.WriteString("/* Collection: " + c.Name + " (" + c.ModeName(m.ID) + ") */\n")
			}
			b.WriteString(selector + " {\n")
			writeCSSVariables(b, vars, m.ID, c, g, opts, namer)
			b.WriteString("}\n")
		}
	}

	if len(styles) > 0 {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(opts.selector() + " {\n")
		writeCSSStyles(b, styles, opts, namer, result)
		b.WriteString("}\n")
	}
}

// writeCSSVariables emits one custom property declaration per variable
// for the given mode
func writeCSSVariables(b *strings.Builder, vars []*Variable, modeID string, c *Collection, g *Graph, opts Options, namer NameFormatter) {
	for _, v := range vars {
		val, ok := valueForMode(v, modeID, c)
		if !ok {
			continue
		}

		cfg := opts.tokenConfig(v.Description)
		text := ResolveValue(val, modeID, g, v.Type, cfg, namer, 0, nil)

		if opts.Comments && v.Description != "" {
			b.WriteString("  /* " + firstLine(v.Description) + " */\n")
		}
		b.WriteString("  --" + namer.Format(v.Name) + ": " + text + ";\n")
	}
}

// writeCSSStyles appends color styles as additional custom properties,
// reformatting their CSS color string per the effective config
func writeCSSStyles(b *strings.Builder, styles []*Style, opts Options, namer NameFormatter, result *ExportResult) {
	if len(styles) == 0 {
		return
	}

	sorted := make([]*Style, len(styles))
	copy(sorted, styles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return namer.Format(sorted[i].Name) < namer.Format(sorted[j].Name)
	})

	if opts.Comments {
		b.WriteString("  /* Styles */\n")
	}
	for _, s := range sorted {
		b.WriteString("  --" + namer.Format(s.Name) + ": " + resolveStyleValue(s, opts) + ";\n")
	}
	result.StylesExported += len(sorted)
}

// resolveStyleValue parses a style's CSS color string and reformats it;
// unparseable values pass through untouched
func resolveStyleValue(s *Style, opts Options) string {
	parsed, err := csscolorparser.Parse(s.Value)
	if err != nil {
		return s.Value
	}
	return formatColor(parsed, opts.tokenConfig(s.Description))
}

// themeName derives the data-theme qualifier from a mode display name
func themeName(modeName string) string {
	return strcase.ToKebab(modeName)
}
