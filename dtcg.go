package varexport

import (
	"encoding/json"
	"strings"
)

// extensionsKey is the vendor namespace for non-standard token metadata
const extensionsKey = "com.yacobolo.varexport"

// ExportJSON renders the graph as a DTCG-style token tree: nested objects
// keyed by collection name then by each path segment, with $type/$value
// leaves. Output is deterministic: encoding/json sorts map keys.
func ExportJSON(g *Graph, opts Options) (string, *ExportResult) {
	result := newExportResult(opts)
	namer := opts.formatter()
	collections := g.FilterCollections(opts.SelectedCollections)
	styles := exportStyles(g, opts)

	if !hasTokens(collections, g, styles) {
		return marshalTokens(map[string]any{"$comment": "No variables found"}), result
	}

	root := map[string]any{}

	for _, c := range collections {
		vars := g.VariablesIn(c.ID)
		if len(vars) == 0 {
			continue
		}
		sortByFormattedName(vars, namer)
		result.CollectionsExported++
		result.VariablesExported += len(vars)

		colNode := map[string]any{}
		root[c.Name] = colNode

		for _, v := range vars {
			insertToken(colNode, v.Name, tokenLeaf(v, c, g, opts))
		}
	}

	if len(styles) > 0 {
		styleNode := map[string]any{}
		root["Styles"] = styleNode
		for _, s := range styles {
			leaf := map[string]any{
				"$type":  "color",
				"$value": resolveStyleValue(s, opts),
			}
			if s.Description != "" {
				leaf["$description"] = s.Description
			}
			insertToken(styleNode, s.Name, leaf)
		}
		result.StylesExported += len(styles)
	}

	return marshalTokens(root), result
}

// insertToken walks/creates the nested path segments and places the leaf
func insertToken(node map[string]any, path string, leaf map[string]any) {
	segments := strings.Split(path, "/")

	for _, seg := range segments[:len(segments)-1] {
		child, ok := node[seg].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[seg] = child
		}
		node = child
	}

	node[segments[len(segments)-1]] = leaf
}

// tokenLeaf builds the $type/$value leaf node for one variable.
// Multi-mode variables carry an object keyed by mode display name
// instead of a scalar $value.
func tokenLeaf(v *Variable, c *Collection, g *Graph, opts Options) map[string]any {
	cfg := opts.tokenConfig(v.Description)

	leaf := map[string]any{
		"$type": dtcgType(v.Type),
	}

	if len(c.Modes) > 1 {
		modeValues := map[string]any{}
		for _, m := range c.Modes {
			if val, ok := valueForMode(v, m.ID, c); ok {
				modeValues[m.Name] = tokenValue(val, v.Type, cfg, g)
			}
		}
		leaf["$value"] = modeValues
	} else if val, ok := valueForMode(v, c.DefaultMode().ID, c); ok {
		leaf["$value"] = tokenValue(val, v.Type, cfg, g)
	}

	if v.Description != "" {
		leaf["$description"] = v.Description
	}

	if cfg.Unit != UnitNone {
		ext := map[string]any{"unit": string(cfg.Unit)}
		if cfg.Unit == UnitRem {
			ext["remBase"] = cfg.RemBase
		}
		leaf["$extensions"] = map[string]any{extensionsKey: ext}
	}

	return leaf
}

// tokenValue renders one stored value as a JSON-native $value. Aliases
// become brace-path references rather than a language-native token.
func tokenValue(val Value, typ VariableType, cfg TokenConfig, g *Graph) any {
	if alias, ok := val.(Alias); ok {
		target := g.VariableByID(alias.ID)
		if target == nil {
			return UnresolvedAliasMarker
		}
		return braceReference(target, g)
	}

	switch typ {
	case TypeColor:
		if c, ok := val.(Color); ok {
			return formatColor(c, cfg)
		}
	case TypeFloat:
		if n, ok := val.(float64); ok {
			if cfg.Unit == UnitNone {
				return n
			}
			return formatNumber(n, cfg)
		}
	case TypeString:
		if s, ok := val.(string); ok {
			return s
		}
	case TypeBoolean:
		if b, ok := val.(bool); ok {
			return b
		}
	}

	return coerceString(val)
}

// braceReference builds the {Collection.path.segments} alias reference
func braceReference(target *Variable, g *Graph) string {
	path := strings.ReplaceAll(target.Name, "/", ".")
	if c := g.CollectionByID(target.CollectionID); c != nil {
		return "{" + c.Name + "." + path + "}"
	}
	return "{" + path + "}"
}

// dtcgType maps a declared variable type to its DTCG $type string
func dtcgType(t VariableType) string {
	switch t {
	case TypeColor:
		return "color"
	case TypeFloat:
		return "number"
	case TypeBoolean:
		return "boolean"
	default:
		return "string"
	}
}

// marshalTokens serializes the token tree with two-space indentation
func marshalTokens(root map[string]any) string {
	out, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		// map[string]any with string/number/bool leaves cannot fail to
		// marshal; keep the no-throw contract anyway
		return "{}"
	}
	return string(out) + "\n"
}
