package varexport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDescription(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		check func(*testing.T, Overrides)
	}{
		{
			name: "empty text",
			text: "",
			check: func(t *testing.T, o Overrides) {
				assert.Nil(t, o.Unit)
				assert.Nil(t, o.RemBase)
				assert.Nil(t, o.ColorFormat)
			},
		},
		{
			name: "px unit",
			text: "unit: px",
			check: func(t *testing.T, o Overrides) {
				assert.Equal(t, UnitPx, *o.Unit)
				assert.Nil(t, o.RemBase)
			},
		},
		{
			name: "case insensitive",
			text: "UNIT: REM",
			check: func(t *testing.T, o Overrides) {
				assert.Equal(t, UnitRem, *o.Unit)
				assert.Nil(t, o.RemBase)
			},
		},
		{
			name: "rem with explicit base",
			text: "unit: rem:20",
			check: func(t *testing.T, o Overrides) {
				assert.Equal(t, UnitRem, *o.Unit)
				assert.Equal(t, 20.0, *o.RemBase)
			},
		},
		{
			name: "percent shorthand",
			text: "unit: %",
			check: func(t *testing.T, o Overrides) {
				assert.Equal(t, UnitPercent, *o.Unit)
			},
		},
		{
			name: "color format",
			text: "format: oklch",
			check: func(t *testing.T, o Overrides) {
				assert.Equal(t, ColorOKLCH, *o.ColorFormat)
			},
		},
		{
			name: "directives embedded in prose",
			text: "Primary brand spacing.\nunit: rem:10\nformat: rgb\nDo not use for text.",
			check: func(t *testing.T, o Overrides) {
				assert.Equal(t, UnitRem, *o.Unit)
				assert.Equal(t, 10.0, *o.RemBase)
				assert.Equal(t, ColorRGB, *o.ColorFormat)
			},
		},
		{
			name: "malformed lines ignored",
			text: "unit:\nunit: lightyears\nformat: cmyk\nrandom text",
			check: func(t *testing.T, o Overrides) {
				assert.Nil(t, o.Unit)
				assert.Nil(t, o.ColorFormat)
			},
		},
		{
			name: "rem base must be positive",
			text: "unit: rem:-4",
			check: func(t *testing.T, o Overrides) {
				assert.Nil(t, o.Unit)
				assert.Nil(t, o.RemBase)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ParseDescription(tt.text))
		})
	}
}

func TestOverridesApply(t *testing.T) {
	base := DefaultTokenConfig()

	t.Run("empty overrides keep defaults", func(t *testing.T) {
		cfg := Overrides{}.Apply(base)
		assert.Equal(t, base, cfg)
	})

	t.Run("overrides replace fields", func(t *testing.T) {
		cfg := ParseDescription("unit: rem:20\nformat: hsl").Apply(base)
		assert.Equal(t, UnitRem, cfg.Unit)
		assert.Equal(t, 20.0, cfg.RemBase)
		assert.Equal(t, ColorHSL, cfg.ColorFormat)
	})

	t.Run("rem without base keeps default base", func(t *testing.T) {
		cfg := ParseDescription("unit: rem").Apply(base)
		assert.Equal(t, UnitRem, cfg.Unit)
		assert.Equal(t, float64(DefaultRemBase), cfg.RemBase)
	})
}
