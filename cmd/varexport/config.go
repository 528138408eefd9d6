package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/varexport"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".varexport.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (VAREXPORT_* prefix)
	if err := k.Load(env.Provider("VAREXPORT_", ".", func(s string) string {
		// VAREXPORT_EXPORT_SELECTOR -> export.selector
		// VAREXPORT_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "VAREXPORT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildExportOptions constructs the library's Options struct from koanf state.
func buildExportOptions() varexport.Options {
	opts := varexport.Options{
		Selector:         getStringWithFallback("selector", "export.selector", ":root"),
		ModesAsSelectors: getBoolWithFallback("modes-as-selectors", "export.modes-as-selectors", false),
		Comments:         getBoolWithFallback("comments", "export.comments", true),
		IncludeStyles:    getBoolWithFallback("include-styles", "export.include-styles", false),
		Precision:        getIntWithFallback("precision", "export.precision", 3),
		Prefix:           getStringWithFallback("prefix", "export.prefix", ""),
		Casing:           varexport.Casing(getStringWithFallback("casing", "export.casing", "kebab")),
		Rules:            loadRules(),
	}

	// Handle collections: check flag key first, then config key
	if ids := k.Strings("collections"); len(ids) > 0 {
		opts.SelectedCollections = ids
	} else if ids := k.Strings("export.collections"); len(ids) > 0 {
		opts.SelectedCollections = ids
	}

	return opts
}

// loadRules reads the name-formatting rule list from the config file.
// Rules are file-only configuration: they are ordered records, which
// flags cannot express.
func loadRules() []varexport.NameFormatRule {
	var rules []varexport.NameFormatRule
	for _, r := range k.Slices("rules") {
		rule := varexport.NameFormatRule{
			Pattern:     r.String("pattern"),
			Replacement: r.String("replacement"),
			Enabled:     true,
		}
		if r.Exists("enabled") {
			rule.Enabled = r.Bool("enabled")
		}
		rules = append(rules, rule)
	}
	return rules
}

// documentIncludes resolves the snapshot glob patterns
func documentIncludes() []string {
	if includes := k.Strings("include"); len(includes) > 0 {
		return includes
	}
	if includes := k.Strings("export.include"); len(includes) > 0 {
		return includes
	}
	return []string{"**/*.json"}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
