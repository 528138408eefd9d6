package varexport

import "github.com/mazznoer/csscolorparser"

// VariableType is the declared type of a variable
type VariableType string

// Declared variable types as stored in the document snapshot
const (
	TypeColor   VariableType = "COLOR"
	TypeFloat   VariableType = "FLOAT"
	TypeString  VariableType = "STRING"
	TypeBoolean VariableType = "BOOLEAN"
)

// Color is a four-component RGBA color with channels in [0,1]
type Color = csscolorparser.Color

// Alias is a variable value that references another variable by id
// instead of storing a literal
type Alias struct {
	ID string
}

// Value is one stored variable value: an Alias, a Color, a float64,
// a string, or a bool. Anything else degrades to string coercion
// when resolved.
type Value any

// Variable is one entry in the design-tool variable graph.
// Name is a /-delimited hierarchical path, e.g. "color/brand/primary".
// Values maps mode ids to the value stored for that mode.
type Variable struct {
	ID           string
	Name         string
	Type         VariableType
	CollectionID string
	Description  string
	Values       map[string]Value
}

// Mode is a named value variant within a collection (e.g. Light/Dark)
type Mode struct {
	ID   string
	Name string
}

// Collection groups variables and declares the modes their values vary over
type Collection struct {
	ID            string
	Name          string
	Modes         []Mode
	DefaultModeID string
}

// Style is a named color style exported alongside variables when
// Options.IncludeStyles is set. Value holds a CSS color string.
type Style struct {
	ID          string
	Name        string
	Description string
	Value       string
}

// Graph is the read-only variable/collection graph handed to the engine.
// The engine never mutates it; lifecycle belongs to the host.
type Graph struct {
	Collections []*Collection
	Variables   []*Variable
	Styles      []*Style
}

// Unit is the numeric unit applied when formatting FLOAT values
type Unit string

// Units recognized by the description parser
const (
	UnitNone    Unit = "none"
	UnitPx      Unit = "px"
	UnitRem     Unit = "rem"
	UnitEm      Unit = "em"
	UnitPercent Unit = "percent"
	UnitMs      Unit = "ms"
)

// ColorFormat selects the CSS color syntax used for COLOR values
type ColorFormat string

// Color formats recognized by the description parser
const (
	ColorHex   ColorFormat = "hex"
	ColorRGB   ColorFormat = "rgb"
	ColorRGBA  ColorFormat = "rgba"
	ColorHSL   ColorFormat = "hsl"
	ColorOKLCH ColorFormat = "oklch"
)

// DefaultRemBase is the rem divisor used when a description says
// "unit: rem" without an explicit base
const DefaultRemBase = 16

// TokenConfig is the fully-resolved per-variable formatting configuration.
// It is built by overlaying description-derived overrides onto
// DefaultTokenConfig; no partial fields survive the merge.
type TokenConfig struct {
	Unit        Unit
	RemBase     float64
	ColorFormat ColorFormat
	Precision   int // decimal places for numeric output, 0-10
}

// DefaultTokenConfig returns the fixed base configuration that
// description overrides are merged onto
func DefaultTokenConfig() TokenConfig {
	return TokenConfig{
		Unit:        UnitNone,
		RemBase:     DefaultRemBase,
		ColorFormat: ColorHex,
	}
}

// Casing selects how the computed default name-formatting rule joins
// path segments
type Casing string

// Casing modes for the computed default rule
const (
	CasingKebab  Casing = "kebab"
	CasingSnake  Casing = "snake"
	CasingCamel  Casing = "camel"
	CasingPascal Casing = "pascal"
	CasingLower  Casing = "lower"
	CasingUpper  Casing = "upper"
)

// NameFormatRule is one user-authored glob ⇒ replacement entry.
// Rules are evaluated in list order; the first enabled rule whose
// pattern matches wins. The computed catch-all rule is never stored
// as a NameFormatRule.
type NameFormatRule struct {
	Pattern     string
	Replacement string
	Enabled     bool
}

// Format identifies one of the supported output formats
type Format string

// Supported export formats
const (
	FormatCSS        Format = "css"
	FormatSCSS       Format = "scss"
	FormatJSON       Format = "json"
	FormatTypeScript Format = "ts"
)

// Options holds the per-export-call parameters. A zero value is usable:
// empty SelectedCollections exports all collections, an empty Selector
// defaults to ":root", and an empty Casing defaults to kebab.
type Options struct {
	SelectedCollections []string // collection ids; empty = all
	Selector            string   // CSS wrapping selector, default ":root"
	ModesAsSelectors    bool     // one CSS block per mode
	Comments            bool     // emit description/collection comments
	IncludeStyles       bool     // append color styles as tokens
	Precision           int      // numeric precision, 0-10
	Prefix              string   // name prefix for the default rule
	Casing              Casing   // casing for the default rule
	Rules               []NameFormatRule
}

// selector returns the wrapping selector with the default applied
func (o Options) selector() string {
	if o.Selector == "" {
		return ":root"
	}
	return o.Selector
}

// formatter builds the name formatter for this export call
func (o Options) formatter() NameFormatter {
	return NameFormatter{
		Rules:  o.Rules,
		Prefix: o.Prefix,
		Casing: o.Casing,
	}
}

// tokenConfig derives the effective per-variable config from the
// variable's description overlaid on the defaults
func (o Options) tokenConfig(description string) TokenConfig {
	cfg := DefaultTokenConfig()
	cfg.Precision = o.Precision
	return ParseDescription(description).Apply(cfg)
}

// ExportResult contains export stats and per-rule validation issues
type ExportResult struct {
	CollectionsExported int
	VariablesExported   int
	StylesExported      int
	RuleIssues          []RuleIssue
}

// RuleIssue reports one invalid name-formatting rule. Invalid rules are
// skipped during evaluation, never fatal.
type RuleIssue struct {
	Index   int    // position in the rule list
	Pattern string // the offending glob pattern
	Message string // regex compile error text
}
