package varexport

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testGraph builds a two-collection graph: single-mode primitives and a
// two-mode semantic collection aliasing into the primitives.
func testGraph() *Graph {
	return &Graph{
		Collections: []*Collection{
			{
				ID:            "c1",
				Name:          "Primitives",
				Modes:         []Mode{{ID: "m1", Name: "Default"}},
				DefaultModeID: "m1",
			},
			{
				ID:            "c2",
				Name:          "Semantic",
				Modes:         []Mode{{ID: "light", Name: "Light"}, {ID: "dark", Name: "Dark"}},
				DefaultModeID: "light",
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
			{
				ID:           "v2",
				Name:         "spacing/sm",
				Type:         TypeFloat,
				CollectionID: "c1",
				Description:  "unit: px",
				Values:       map[string]Value{"m1": 8.0},
			},
			{
				ID:           "v3",
				Name:         "surface/background",
				Type:         TypeColor,
				CollectionID: "c2",
				Values: map[string]Value{
					"light": Color{R: 1, G: 1, B: 1, A: 1},
					"dark":  Alias{ID: "v1"},
				},
			},
		},
	}
}

func TestExportCSS(t *testing.T) {
	out, result := ExportCSS(testGraph(), Options{Precision: 3})

	expected := ":root {\n" +
		"  --color-primary: #ff0000;\n" +
		"  --spacing-sm: 8px;\n" +
		"  --surface-background: #ffffff;\n" +
		"}\n"
	assert.Equal(t, expected, out)
	assert.Equal(t, 2, result.CollectionsExported)
	assert.Equal(t, 3, result.VariablesExported)
}

func TestExportCSSModesAsSelectors(t *testing.T) {
	out, _ := ExportCSS(testGraph(), Options{
		Precision:           3,
		ModesAsSelectors:    true,
		SelectedCollections: []string{"c2"},
	})

	expected := ":root {\n" +
		"  --surface-background: #ffffff;\n" +
		"}\n" +
		"\n" +
		`:root[data-theme="dark"] {` + "\n" +
		"  --surface-background: var(--color-primary);\n" +
		"}\n"
	assert.Equal(t, expected, out)
}

func TestExportCSSComments(t *testing.T) {
	g := testGraph()
	out, _ := ExportCSS(g, Options{Precision: 3, Comments: true, SelectedCollections: []string{"c1"}})

	assert.Contains(t, out, "/* Collection: Primitives */")
	assert.Contains(t, out, "/* unit: px */")
}

func TestExportCollectionFiltering(t *testing.T) {
	t.Run("empty selection exports all", func(t *testing.T) {
		out, result := ExportCSS(testGraph(), Options{})
		assert.Contains(t, out, "--color-primary")
		assert.Contains(t, out, "--surface-background")
		assert.Equal(t, 2, result.CollectionsExported)
	})

	t.Run("selection restricts to exactly those ids", func(t *testing.T) {
		out, result := ExportCSS(testGraph(), Options{SelectedCollections: []string{"c2"}})
		assert.NotContains(t, out, "--color-primary:")
		assert.Contains(t, out, "--surface-background")
		assert.Equal(t, 1, result.CollectionsExported)
	})

	t.Run("unknown ids yield empty marker", func(t *testing.T) {
		out, _ := ExportCSS(testGraph(), Options{SelectedCollections: []string{"nope"}})
		assert.Equal(t, "/* No variables found */\n", out)
	})
}

func TestExportIdempotence(t *testing.T) {
	g := testGraph()
	opts := Options{Precision: 3, Comments: true}

	for _, format := range []Format{FormatCSS, FormatSCSS, FormatJSON, FormatTypeScript} {
		t.Run(string(format), func(t *testing.T) {
			first, _, err := Export(g, format, opts)
			require.NoError(t, err)
			second, _, err := Export(g, format, opts)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestExportUnknownFormat(t *testing.T) {
	_, _, err := Export(testGraph(), Format("yaml"), Options{})
	assert.Error(t, err)
}

func TestExportJSON(t *testing.T) {
	out, result := ExportJSON(testGraph(), Options{Precision: 3})

	var root map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &root))

	primitives, ok := root["Primitives"].(map[string]any)
	require.True(t, ok)

	primary := primitives["color"].(map[string]any)["primary"].(map[string]any)
	assert.Equal(t, "color", primary["$type"])
	assert.Equal(t, "#ff0000", primary["$value"])

	sm := primitives["spacing"].(map[string]any)["sm"].(map[string]any)
	assert.Equal(t, "number", sm["$type"])
	assert.Equal(t, "8px", sm["$value"])
	assert.Equal(t, "unit: px", sm["$description"])
	ext := sm["$extensions"].(map[string]any)["com.yacobolo.varexport"].(map[string]any)
	assert.Equal(t, "px", ext["unit"])

	// Multi-mode variables carry a value object keyed by mode name
	background := root["Semantic"].(map[string]any)["surface"].(map[string]any)["background"].(map[string]any)
	values := background["$value"].(map[string]any)
	assert.Equal(t, "#ffffff", values["Light"])
	assert.Equal(t, "{Primitives.color.primary}", values["Dark"])

	assert.Equal(t, 2, result.CollectionsExported)
	assert.Equal(t, 3, result.VariablesExported)
}

func TestExportJSONBareNumber(t *testing.T) {
	g := &Graph{
		Collections: []*Collection{
			{ID: "c1", Name: "N", Modes: []Mode{{ID: "m1", Name: "Default"}}, DefaultModeID: "m1"},
		},
		Variables: []*Variable{
			{ID: "v1", Name: "weight/bold", Type: TypeFloat, CollectionID: "c1", Values: map[string]Value{"m1": 700.0}},
		},
	}

	out, _ := ExportJSON(g, Options{})

	var root map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &root))
	bold := root["N"].(map[string]any)["weight"].(map[string]any)["bold"].(map[string]any)
	assert.Equal(t, 700.0, bold["$value"])
}

func TestExportJSONEmpty(t *testing.T) {
	out, _ := ExportJSON(&Graph{}, Options{})

	var root map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &root))
	assert.Equal(t, "No variables found", root["$comment"])
}

func TestExportTypeScript(t *testing.T) {
	out, _ := ExportTypeScript(testGraph(), Options{})

	expected := "export type TokenName =\n" +
		"  | '--color-primary'\n" +
		"  | '--spacing-sm'\n" +
		"  | '--surface-background';\n" +
		"\n" +
		"declare module 'csstype' {\n" +
		"  interface Properties {\n" +
		"    [index: TokenName]: string | number;\n" +
		"  }\n" +
		"}\n"
	assert.Equal(t, expected, out)
}

func TestExportTypeScriptEmpty(t *testing.T) {
	out, _ := ExportTypeScript(&Graph{}, Options{})
	assert.Equal(t, "// No variables found\n", out)
}

func TestExportStyles(t *testing.T) {
	g := testGraph()
	g.Styles = []*Style{
		{ID: "s1", Name: "brand/accent", Value: "rgb(0, 128, 255)"},
	}

	t.Run("excluded by default", func(t *testing.T) {
		out, result := ExportCSS(g, Options{})
		assert.NotContains(t, out, "--brand-accent")
		assert.Equal(t, 0, result.StylesExported)
	})

	t.Run("included on request", func(t *testing.T) {
		out, result := ExportCSS(g, Options{IncludeStyles: true})
		assert.Contains(t, out, "  --brand-accent: #0080ff;\n")
		assert.Equal(t, 1, result.StylesExported)
	})
}

func TestExportRuleIssuesSurface(t *testing.T) {
	_, result := ExportCSS(testGraph(), Options{
		Rules: []NameFormatRule{{Pattern: "color/*", Replacement: "c-$1", Enabled: true}},
	})
	assert.Empty(t, result.RuleIssues)
}

func TestExportCustomRules(t *testing.T) {
	out, _ := ExportCSS(testGraph(), Options{
		SelectedCollections: []string{"c1"},
		Rules: []NameFormatRule{
			{Pattern: "color/*", Replacement: "brand-$1", Enabled: true},
		},
	})

	assert.Contains(t, out, "--brand-primary: #ff0000;")
	// Unmatched paths fall through to the computed default rule
	assert.Contains(t, out, "--spacing-sm: 8px;")
	assert.False(t, strings.Contains(out, "--color-primary"))
}
