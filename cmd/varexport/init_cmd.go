package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .varexport.yaml config file",
	Long:  `Create a .varexport.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".varexport.yaml"); err == nil && !force {
			return fmt.Errorf(".varexport.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".varexport.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .varexport.yaml")
		return nil
	},
}

const defaultConfig = `# varexport configuration
# Docs: https://github.com/yacobolo/varexport

# Shared settings
verbose: false

# Export settings
export:
  source: tokens
  include:
    - "**/*.json"
  format: css              # css | scss | json | ts
  output: ""               # empty = stdout
  selector: ":root"
  modes-as-selectors: false
  comments: true
  include-styles: false
  precision: 3
  prefix: ""
  casing: kebab            # kebab | snake | camel | pascal | lower | upper
  collections: []          # collection ids, empty = all

# Name-formatting rules, tried in order; first enabled match wins.
# "*" captures one path segment, "**" captures everything.
# rules:
#   - pattern: "color/*/alpha/*"
#     replacement: "color-$1-a$2"
#     enabled: true

# Check settings
check:
  strict: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
