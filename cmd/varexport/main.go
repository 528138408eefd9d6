// Package main provides the varexport CLI tool for exporting design-tool
// variable graphs to CSS, SCSS, DTCG JSON and TypeScript.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
