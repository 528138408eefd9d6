package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/varexport"
	report "github.com/yacobolo/varexport/internal/varexport"
)

var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"gen"},
	Short:   "Export the variable graph to a target format",
	Long: `Load variable graph snapshots and render them as CSS custom
properties, SCSS variables, a DTCG JSON token tree, or TypeScript
declarations.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.String("source", "tokens", "Source directory with graph snapshot files")
	f.StringSlice("include", nil, "Glob patterns for snapshot files to include")
	f.String("format", "css", "Export format: css|scss|json|ts")
	f.StringP("output", "o", "", "Output file (default: stdout)")
	f.String("selector", ":root", "CSS wrapping selector")
	f.Bool("modes-as-selectors", false, "Emit one CSS block per mode")
	f.Bool("comments", true, "Emit description comments")
	f.Bool("include-styles", false, "Append color styles as tokens")
	f.Int("precision", 3, "Numeric precision (0-10 decimal places)")
	f.String("prefix", "", "Name prefix for the default formatting rule")
	f.String("casing", "kebab", "Default rule casing: kebab|snake|camel|pascal|lower|upper")
	f.StringSlice("collections", nil, "Collection ids to export (default: all)")
}

func runExport(_ *cobra.Command, _ []string) error {
	source := getStringWithFallback("source", "export.source", "tokens")
	format := varexport.Format(getStringWithFallback("format", "export.format", "css"))
	outputPath := getStringWithFallback("output", "export.output", "")
	quiet := getBoolWithFallback("quiet", "quiet", false)
	verbose := getBoolWithFallback("verbose", "verbose", false)

	graph, warnings, err := varexport.LoadDocuments(source, documentIncludes())
	if err != nil {
		return fmt.Errorf("loading documents: %w", err)
	}

	out, result, err := varexport.Export(graph, format, buildExportOptions())
	if err != nil {
		return err
	}

	useColors := report.ShouldUseColors(getBoolWithFallback("color", "color", false))

	if outputPath == "" {
		fmt.Print(out)
		// Summary goes to stderr so it never pollutes the exported blob
		if verbose && !quiet {
			reporter := report.NewReporter(os.Stderr, useColors)
			reporter.PrintExportSummary(format, result, warnings)
		}
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	if !quiet {
		reporter := report.NewReporter(os.Stdout, useColors)
		reporter.PrintExportSummary(format, result, warnings)
		fmt.Printf("  Wrote %s\n", outputPath)
	}

	return nil
}
