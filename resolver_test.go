package varexport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func resolverGraph() *Graph {
	return &Graph{
		Collections: []*Collection{
			{
				ID:            "c1",
				Name:          "Primitives",
				Modes:         []Mode{{ID: "m1", Name: "Default"}},
				DefaultModeID: "m1",
			},
		},
		Variables: []*Variable{
			{
				ID:           "v1",
				Name:         "color/primary",
				Type:         TypeColor,
				CollectionID: "c1",
				Values:       map[string]Value{"m1": Color{R: 1, A: 1}},
			},
		},
	}
}

func TestResolveValueAlias(t *testing.T) {
	g := resolverGraph()

	t.Run("one hop reference without prefix", func(t *testing.T) {
		out := ResolveValue(Alias{ID: "v1"}, "m1", g, TypeColor, DefaultTokenConfig(), NameFormatter{}, 0, nil)
		assert.Equal(t, "var(--color-primary)", out)
	})

	t.Run("one hop reference with prefix", func(t *testing.T) {
		namer := NameFormatter{Prefix: "ds"}
		out := ResolveValue(Alias{ID: "v1"}, "m1", g, TypeColor, DefaultTokenConfig(), namer, 0, nil)
		assert.Equal(t, "var(--ds-color-primary)", out)
	})

	t.Run("unresolved alias", func(t *testing.T) {
		out := ResolveValue(Alias{ID: "missing"}, "m1", g, TypeColor, DefaultTokenConfig(), NameFormatter{}, 0, nil)
		assert.Equal(t, UnresolvedAliasMarker, out)
	})

	t.Run("visited target yields circular marker", func(t *testing.T) {
		visited := map[string]bool{"v1": true}
		out := ResolveValue(Alias{ID: "v1"}, "m1", g, TypeColor, DefaultTokenConfig(), NameFormatter{}, 1, visited)
		assert.Equal(t, CircularRefMarker, out)
	})

	t.Run("depth guard fires for any value kind", func(t *testing.T) {
		out := ResolveValue(16.0, "m1", g, TypeFloat, DefaultTokenConfig(), NameFormatter{}, MaxAliasDepth+1, nil)
		assert.Equal(t, CircularRefMarker, out)
	})
}

func TestResolveValueLiterals(t *testing.T) {
	g := resolverGraph()

	cfg := func(desc string, precision int) TokenConfig {
		c := DefaultTokenConfig()
		c.Precision = precision
		return ParseDescription(desc).Apply(c)
	}

	tests := []struct {
		name     string
		value    Value
		typ      VariableType
		cfg      TokenConfig
		expected string
	}{
		{"bare number", 12.0, TypeFloat, cfg("", 3), "12"},
		{"px unit", 16.0, TypeFloat, cfg("unit: px", 3), "16px"},
		{"rem divides by base", 16.0, TypeFloat, cfg("unit: rem", 3), "1rem"},
		{"rem custom base", 20.0, TypeFloat, cfg("unit: rem:10", 3), "2rem"},
		{"ms unit", 300.0, TypeFloat, cfg("unit: ms", 3), "300ms"},
		{"em unit", 1.25, TypeFloat, cfg("unit: em", 3), "1.25em"},
		{"percent unit", 50.0, TypeFloat, cfg("unit: %", 3), "50%"},
		{"precision rounds and trims", 1.0 / 3.0, TypeFloat, cfg("", 2), "0.33"},
		{"trailing zeros trimmed", 1.5, TypeFloat, cfg("", 4), "1.5"},
		{"string is quoted and escaped", `say "hi"`, TypeString, cfg("", 3), `"say \"hi\""`},
		{"boolean true", true, TypeBoolean, cfg("", 3), "1"},
		{"boolean false", false, TypeBoolean, cfg("", 3), "0"},
		{"shape mismatch coerces", "oops", TypeFloat, cfg("", 3), "oops"},
		{"nil value coerces", nil, TypeColor, cfg("", 3), `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ResolveValue(tt.value, "m1", g, tt.typ, tt.cfg, NameFormatter{}, 0, nil)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestFormatColor(t *testing.T) {
	red := Color{R: 1, G: 0, B: 0, A: 1}
	half := Color{R: 1, G: 0, B: 0, A: 0.5}
	black := Color{A: 1}

	cfg := func(format ColorFormat) TokenConfig {
		c := DefaultTokenConfig()
		c.ColorFormat = format
		return c
	}

	tests := []struct {
		name     string
		color    Color
		format   ColorFormat
		expected string
	}{
		{"hex drops alpha", half, ColorHex, "#ff0000"},
		{"hex", red, ColorHex, "#ff0000"},
		{"rgb", red, ColorRGB, "rgb(255, 0, 0)"},
		{"rgba keeps alpha", half, ColorRGBA, "rgba(255, 0, 0, 0.5)"},
		{"hsl", red, ColorHSL, "hsl(0, 100%, 50%)"},
		{"oklch black", black, ColorOKLCH, "oklch(0% 0 0)"},
		{"channels are clamped", Color{R: 2, G: -1, B: 0.5, A: 1}, ColorHex, "#ff0080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatColor(tt.color, cfg(tt.format)))
		})
	}
}

func TestTrimNumber(t *testing.T) {
	assert.Equal(t, "1", trimNumber(1.0000, 4))
	assert.Equal(t, "0.333", trimNumber(1.0/3.0, 3))
	assert.Equal(t, "16", trimNumber(16, 0))
	assert.Equal(t, "0", trimNumber(-0.00001, 2))
}
