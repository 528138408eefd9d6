// Package varexport exports a design-tool variable graph (colors,
// numbers, strings, booleans organized into collections and modes, with
// cross-variable alias references) into CSS custom properties, SCSS
// variables, a DTCG-style JSON token tree, or TypeScript declarations.
//
// # Exporting
//
// Hand the engine a graph snapshot and per-call options:
//
//	graph, warnings, err := varexport.LoadDocuments("tokens", []string{"**/*.json"})
//	out, result, err := varexport.Export(graph, varexport.FormatCSS, varexport.Options{
//		Selector: ":root",
//		Prefix:   "ds",
//	})
//
// The engine is pure and synchronous: each call gets its own graph
// snapshot and options and produces one output string. Repeated calls
// with unchanged input are byte-identical. Malformed domain data never
// raises an error; defects surface as inline comment markers that keep
// the generated file syntactically well-formed.
//
// # Name formatting
//
// Hierarchical variable paths become target identifiers through an
// ordered list of glob rules with capture-group replacement, plus a
// computed catch-all built from a prefix and casing mode:
//
//	rules := []varexport.NameFormatRule{
//		{Pattern: "color/*/alpha/*", Replacement: "color-$1-a$2", Enabled: true},
//	}
//
// GlobToRegex, ApplyReplacement, ToCustomCSSName and
// ComputeDefaultReplacement are exported for live-preview callers.
//
// # CLI Tool
//
// varexport also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/varexport/cmd/varexport@latest
package varexport
