package varexport

import (
	"strconv"
	"strings"
)

// Overrides is a partial TokenConfig parsed from a variable description.
// Nil fields were not mentioned and leave the base config untouched.
type Overrides struct {
	Unit        *Unit
	RemBase     *float64
	ColorFormat *ColorFormat
}

// ParseDescription scans a free-text variable description for
// "key: value" directives and returns the recognized overrides.
//
// Recognized directives (case-insensitive, one per line):
//
//	unit: none|px|rem|rem:<N>|em|%|ms
//	format: hex|rgb|rgba|hsl|oklch
//
// Malformed or unrecognized lines are ignored. The function is pure and
// total over all inputs; unparseable text yields empty overrides.
func ParseDescription(text string) Overrides {
	var o Overrides

	for _, line := range strings.Split(text, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.ToLower(strings.TrimSpace(value))

		switch key {
		case "unit":
			parseUnit(value, &o)
		case "format":
			parseColorFormat(value, &o)
		}
	}

	return o
}

// parseUnit interprets the value of a "unit:" directive
func parseUnit(value string, o *Overrides) {
	switch value {
	case "none":
		o.Unit = unitPtr(UnitNone)
	case "px":
		o.Unit = unitPtr(UnitPx)
	case "em":
		o.Unit = unitPtr(UnitEm)
	case "%", "percent":
		o.Unit = unitPtr(UnitPercent)
	case "ms":
		o.Unit = unitPtr(UnitMs)
	case "rem":
		o.Unit = unitPtr(UnitRem)
	default:
		// rem with an explicit base: "rem:20"
		if base, ok := strings.CutPrefix(value, "rem:"); ok {
			n, err := strconv.ParseFloat(strings.TrimSpace(base), 64)
			if err != nil || n <= 0 {
				return
			}
			o.Unit = unitPtr(UnitRem)
			o.RemBase = &n
		}
	}
}

// parseColorFormat interprets the value of a "format:" directive
func parseColorFormat(value string, o *Overrides) {
	switch value {
	case "hex":
		o.ColorFormat = colorFormatPtr(ColorHex)
	case "rgb":
		o.ColorFormat = colorFormatPtr(ColorRGB)
	case "rgba":
		o.ColorFormat = colorFormatPtr(ColorRGBA)
	case "hsl":
		o.ColorFormat = colorFormatPtr(ColorHSL)
	case "oklch":
		o.ColorFormat = colorFormatPtr(ColorOKLCH)
	}
}

// Apply overlays the overrides onto a base config and returns the result
func (o Overrides) Apply(cfg TokenConfig) TokenConfig {
	if o.Unit != nil {
		cfg.Unit = *o.Unit
	}
	if o.RemBase != nil {
		cfg.RemBase = *o.RemBase
	}
	if o.ColorFormat != nil {
		cfg.ColorFormat = *o.ColorFormat
	}
	return cfg
}

func unitPtr(u Unit) *Unit                      { return &u }
func colorFormatPtr(f ColorFormat) *ColorFormat { return &f }
