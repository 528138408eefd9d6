package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/varexport"
	report "github.com/yacobolo/varexport/internal/varexport"
)

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Verify emitted CSS files",
	Long: `Tokenize emitted CSS files, count custom property declarations and
flag duplicate names and inline defect markers (unresolved alias,
circular reference) left behind by a broken variable graph.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("strict", false, "Exit 1 on any issue (CI mode)")
}

func runCheck(_ *cobra.Command, args []string) error {
	strict := getBoolWithFallback("strict", "check.strict", false)
	quiet := getBoolWithFallback("quiet", "quiet", false)
	useColors := report.ShouldUseColors(getBoolWithFallback("color", "color", false))

	var totalIssues, totalErrors int

	for _, path := range args {
		result, err := varexport.CheckFile(path)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}

		totalIssues += len(result.Issues)
		totalErrors += result.ErrorCount()

		if !quiet {
			reporter := report.NewReporter(os.Stdout, useColors)
			reporter.PrintCheckResult(path, result)
		}
	}

	// Soft gate: errors always fail the build, warnings only in strict mode
	if totalErrors > 0 || (strict && totalIssues > 0) {
		return fmt.Errorf("%d issues found", totalIssues)
	}

	return nil
}
