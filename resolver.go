package varexport

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxAliasDepth bounds multi-hop alias resolution. One export call only
// ever resolves a single hop, but the depth/visited parameters let
// external callers (e.g. calculated-value resolution) recurse safely.
const MaxAliasDepth = 10

// Inline defect markers. Both are valid in CSS, SCSS, JSON string and
// TypeScript contexts so emitted files stay well-formed.
const (
	CircularRefMarker     = "/* circular reference */"
	UnresolvedAliasMarker = "/* unresolved alias */"
)

// ResolveValue produces the literal or reference text for one
// variable/mode value. It never fails: graph inconsistencies and shape
// mismatches degrade to inline markers or best-effort string coercion.
//
// depth and visited carry guard state across recursive calls. Pass 0 and
// nil at the top level.
func ResolveValue(v Value, modeID string, graph *Graph, typ VariableType, cfg TokenConfig, namer NameFormatter, depth int, visited map[string]bool) string {
	// Depth guard first, independent of value kind, so multi-hop callers
	// cannot recurse unboundedly even on non-alias values.
	if depth > MaxAliasDepth {
		return CircularRefMarker
	}

	if alias, ok := v.(Alias); ok {
		if visited[alias.ID] {
			return CircularRefMarker
		}

		target := graph.VariableByID(alias.ID)
		if target == nil {
			return UnresolvedAliasMarker
		}

		// One hop only: reference the target by formatted name rather
		// than resolving its stored value.
		return "var(--" + namer.Format(target.Name) + ")"
	}

	switch typ {
	case TypeColor:
		if c, ok := v.(Color); ok {
			return formatColor(c, cfg)
		}
	case TypeFloat:
		if n, ok := v.(float64); ok {
			return formatNumber(n, cfg)
		}
	case TypeString:
		if s, ok := v.(string); ok {
			return strconv.Quote(s)
		}
	case TypeBoolean:
		if b, ok := v.(bool); ok {
			if b {
				return "1"
			}
			return "0"
		}
	}

	// Value shape does not match the declared type
	return coerceString(v)
}

// coerceString is the shared fallback for values whose runtime shape does
// not match their declared type
func coerceString(v Value) string {
	if v == nil {
		return `""`
	}
	return fmt.Sprintf("%v", v)
}

// formatNumber renders a raw numeric value per the configured unit,
// rounded to the configured precision with trailing zeros trimmed
func formatNumber(n float64, cfg TokenConfig) string {
	switch cfg.Unit {
	case UnitPx:
		return trimNumber(n, cfg.Precision) + "px"
	case UnitRem:
		base := cfg.RemBase
		if base <= 0 {
			base = DefaultRemBase
		}
		return trimNumber(n/base, cfg.Precision) + "rem"
	case UnitEm:
		return trimNumber(n, cfg.Precision) + "em"
	case UnitPercent:
		return trimNumber(n, cfg.Precision) + "%"
	case UnitMs:
		return trimNumber(n, cfg.Precision) + "ms"
	default:
		return trimNumber(n, cfg.Precision)
	}
}

// trimNumber rounds to precision decimal places and trims trailing zeros
func trimNumber(n float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	if precision > 10 {
		precision = 10
	}

	s := strconv.FormatFloat(n, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// formatColor converts a [0,1] RGBA color to the configured CSS syntax
func formatColor(c Color, cfg TokenConfig) string {
	r := channel(c.R)
	g := channel(c.G)
	b := channel(c.B)

	switch cfg.ColorFormat {
	case ColorRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	case ColorRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, trimNumber(clamp01(c.A), 4))
	case ColorHSL:
		h, s, l := rgbToHSL(clamp01(c.R), clamp01(c.G), clamp01(c.B))
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)",
			int(math.Round(h)), int(math.Round(s*100)), int(math.Round(l*100)))
	case ColorOKLCH:
		l, ch, h := rgbToOKLCH(clamp01(c.R), clamp01(c.G), clamp01(c.B))
		return fmt.Sprintf("oklch(%s%% %s %s)",
			trimNumber(l*100, 2), trimNumber(ch, 4), trimNumber(h, 2))
	default:
		// hex drops alpha
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
}

// channel scales a [0,1] component to the 0-255 integer range
func channel(v float64) int {
	return int(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// rgbToHSL converts [0,1] RGB to hue (degrees) and [0,1] saturation/lightness
func rgbToHSL(r, g, b float64) (h, s, l float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	return h, s, l
}

// rgbToOKLCH converts [0,1] sRGB to OKLCH (lightness, chroma, hue degrees)
func rgbToOKLCH(r, g, b float64) (lightness, chroma, hue float64) {
	lr := srgbToLinear(r)
	lg := srgbToLinear(g)
	lb := srgbToLinear(b)

	l := math.Cbrt(0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb)
	m := math.Cbrt(0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb)
	s := math.Cbrt(0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb)

	lightness = 0.2104542553*l + 0.7936177850*m - 0.0040720468*s
	a := 1.9779984951*l - 2.4285922050*m + 0.4505937099*s
	bb := 0.0259040371*l + 0.7827717662*m - 0.8086757660*s

	chroma = math.Sqrt(a*a + bb*bb)
	hue = math.Atan2(bb, a) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}

	return lightness, chroma, hue
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}
