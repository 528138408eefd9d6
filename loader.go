package varexport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mazznoer/csscolorparser"
	ignore "github.com/sabhiram/go-gitignore"
)

// documentFile is the on-disk snapshot schema of a variable graph
type documentFile struct {
	Collections []documentCollection `json:"collections"`
	Variables   []documentVariable   `json:"variables"`
	Styles      []documentStyle      `json:"styles"`
}

type documentCollection struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Modes         []documentMode `json:"modes"`
	DefaultModeID string         `json:"defaultModeId"`
}

type documentMode struct {
	ModeID string `json:"modeId"`
	Name   string `json:"name"`
}

type documentVariable struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	Type         string                     `json:"type"`
	CollectionID string                     `json:"collectionId"`
	Description  string                     `json:"description"`
	ValuesByMode map[string]json.RawMessage `json:"valuesByMode"`
}

type documentStyle struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Value       string `json:"value"`
}

// aliasValue is the wire shape of an alias reference
type aliasValue struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// colorValue is the wire shape of a color object
type colorValue struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// LoadDocuments scans a source directory for graph snapshot files
// matching the include patterns and merges them into one Graph.
// Collections and variables from later files never overwrite entries
// with the same id from earlier files; a warning is returned instead.
func LoadDocuments(sourceDir string, includes []string) (*Graph, []string, error) {
	files, err := scanDocumentFiles(sourceDir, includes)
	if err != nil {
		return nil, nil, fmt.Errorf("scan failed: %w", err)
	}

	graph := &Graph{}
	var warnings []string

	seenCollections := make(map[string]string) // id -> source file
	seenVariables := make(map[string]string)
	seenStyles := make(map[string]string)

	for _, file := range files {
		doc, err := parseDocumentFile(file)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Failed to parse %s: %v", file, err))
			continue
		}

		for _, c := range doc.Collections {
			if prev, found := seenCollections[c.ID]; found {
				warnings = append(warnings, fmt.Sprintf(
					"Duplicate collection %q found in %s and %s - keeping first", c.ID, prev, file))
				continue
			}
			seenCollections[c.ID] = file
			graph.Collections = append(graph.Collections, toCollection(c))
		}

		for _, v := range doc.Variables {
			if prev, found := seenVariables[v.ID]; found {
				warnings = append(warnings, fmt.Sprintf(
					"Duplicate variable %q found in %s and %s - keeping first", v.ID, prev, file))
				continue
			}
			seenVariables[v.ID] = file
			graph.Variables = append(graph.Variables, toVariable(v))
		}

		for _, s := range doc.Styles {
			if _, found := seenStyles[s.ID]; found {
				continue
			}
			seenStyles[s.ID] = file
			graph.Styles = append(graph.Styles, &Style{
				ID:          s.ID,
				Name:        s.Name,
				Description: s.Description,
				Value:       s.Value,
			})
		}
	}

	return graph, warnings, nil
}

// scanDocumentFiles finds snapshot files matching the include patterns.
// Deduplicates across patterns and skips gitignored files.
func scanDocumentFiles(sourceDir string, includes []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range includes {
		fullPattern := filepath.Join(sourceDir, pattern)

		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(fullPattern)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			if shouldSkipFile(match) {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}

	return files, nil
}

// shouldSkipFile excludes gitignored snapshot files. Only relative paths
// are checked: absolute paths (like /tmp/...) are outside the project and
// its .gitignore does not apply to them.
func shouldSkipFile(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// parseDocumentFile reads and decodes a single snapshot file
func parseDocumentFile(path string) (*documentFile, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var doc documentFile
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	return &doc, nil
}

func toCollection(c documentCollection) *Collection {
	modes := make([]Mode, 0, len(c.Modes))
	for _, m := range c.Modes {
		modes = append(modes, Mode{ID: m.ModeID, Name: m.Name})
	}
	return &Collection{
		ID:            c.ID,
		Name:          c.Name,
		Modes:         modes,
		DefaultModeID: c.DefaultModeID,
	}
}

func toVariable(v documentVariable) *Variable {
	values := make(map[string]Value, len(v.ValuesByMode))
	for modeID, raw := range v.ValuesByMode {
		values[modeID] = decodeValue(raw, VariableType(v.Type))
	}
	return &Variable{
		ID:           v.ID,
		Name:         v.Name,
		Type:         VariableType(v.Type),
		CollectionID: v.CollectionID,
		Description:  v.Description,
		Values:       values,
	}
}

// decodeValue interprets one stored mode value. An alias object becomes
// an Alias, a color object or CSS color string becomes a Color, and
// scalars decode natively. Anything unrecognized is kept as its decoded
// shape so the resolver's coercion path can surface it.
func decodeValue(raw json.RawMessage, typ VariableType) Value {
	var alias aliasValue
	if err := json.Unmarshal(raw, &alias); err == nil && alias.Type == "VARIABLE_ALIAS" && alias.ID != "" {
		return Alias{ID: alias.ID}
	}

	if typ == TypeColor {
		var c colorValue
		if err := json.Unmarshal(raw, &c); err == nil && looksLikeColor(raw) {
			if c.A == 0 && !rawHasAlpha(raw) {
				c.A = 1
			}
			return Color{R: c.R, G: c.G, B: c.B, A: c.A}
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if parsed, err := csscolorparser.Parse(s); err == nil {
				return parsed
			}
			return s
		}
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var v any
	_ = json.Unmarshal(raw, &v)
	return v
}

// looksLikeColor checks that the object carries r/g/b keys, since
// json.Unmarshal accepts any object into colorValue
func looksLikeColor(raw json.RawMessage) bool {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return false
	}
	_, hasR := m["r"]
	_, hasG := m["g"]
	_, hasB := m["b"]
	return hasR && hasG && hasB
}

func rawHasAlpha(raw json.RawMessage) bool {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return false
	}
	_, ok := m["a"]
	return ok
}
