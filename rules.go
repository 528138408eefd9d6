package varexport

import (
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
)

// NameFormatter turns hierarchical variable paths into target identifiers.
// User rules are tried in list order; the computed catch-all (built from
// Prefix and Casing) fires only when no enabled rule matched.
type NameFormatter struct {
	Rules  []NameFormatRule
	Prefix string
	Casing Casing
}

// Format produces the target identifier for a variable path. It never
// fails: the catch-all rule matches everything.
func (f NameFormatter) Format(path string) string {
	if name, ok := ToCustomCSSName(path, f.Rules); ok {
		return name
	}
	return ComputeDefaultReplacement(path, f.Prefix, f.Casing)
}

// GlobToRegex compiles a path-segment-aware glob pattern into an anchored
// regex with capturing groups. A single * captures one path segment
// (no embedded /), a double ** captures everything including /. All
// other characters match literally.
//
// Example: "color/*/alpha/*" against "color/brand/alpha/50" captures
// ["brand", "50"].
func GlobToRegex(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteByte('^')

	for i := 0; i < len(pattern); {
		if pattern[i] == '*' {
			if i+1 < len(pattern) && pattern[i+1] == '*' {
				b.WriteString("(.+)")
				i += 2
			} else {
				b.WriteString("([^/]+)")
				i++
			}
			continue
		}
		b.WriteString(regexp.QuoteMeta(pattern[i : i+1]))
		i++
	}

	b.WriteByte('$')
	return regexp.Compile(b.String())
}

// ApplyReplacement instantiates a replacement template by substituting
// $1, $2, ... with the corresponding captures. References to missing
// captures substitute to the empty string.
func ApplyReplacement(template string, captures []string) string {
	var b strings.Builder

	for i := 0; i < len(template); {
		if template[i] == '$' && i+1 < len(template) && isDigit(template[i+1]) {
			j := i + 1
			for j < len(template) && isDigit(template[j]) {
				j++
			}
			n := 0
			for _, c := range template[i+1 : j] {
				n = n*10 + int(c-'0')
			}
			if n >= 1 && n <= len(captures) {
				b.WriteString(captures[n-1])
			}
			i = j
			continue
		}
		b.WriteByte(template[i])
		i++
	}

	return b.String()
}

// ToCustomCSSName evaluates the user rule list against a variable path.
// Rules are tried in list order and the first enabled rule whose pattern
// matches the full path wins; first match, not best match. Disabled and
// invalid rules are skipped. Returns ok=false when no rule matched.
func ToCustomCSSName(path string, rules []NameFormatRule) (string, bool) {
	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}

		re, err := GlobToRegex(rule.Pattern)
		if err != nil {
			// Invalid patterns are reported by ValidateRules; here they
			// must not abort evaluation of later rules.
			continue
		}

		m := re.FindStringSubmatch(path)
		if m == nil {
			continue
		}

		return ApplyReplacement(rule.Replacement, m[1:]), true
	}

	return "", false
}

// ComputeDefaultReplacement is the catch-all rule: it transforms the full
// slash-delimited path into the chosen casing convention and prepends the
// prefix. It is recomputed from (prefix, casing) on every call and never
// stored as a regular rule.
func ComputeDefaultReplacement(path, prefix string, casing Casing) string {
	segments := strings.Split(path, "/")

	var name string
	switch casing {
	case CasingSnake:
		name = joinSegments(segments, "_", strcase.ToSnake)
	case CasingCamel:
		name = strcase.ToLowerCamel(strings.Join(segments, "-"))
	case CasingPascal:
		name = strcase.ToCamel(strings.Join(segments, "-"))
	case CasingLower:
		name = strings.ToLower(strings.Join(segments, "-"))
	case CasingUpper:
		name = joinSegments(segments, "_", strcase.ToScreamingSnake)
	default: // kebab
		name = joinSegments(segments, "-", strcase.ToKebab)
	}

	if prefix != "" {
		sep := "-"
		if casing == CasingSnake || casing == CasingUpper {
			sep = "_"
		}
		name = prefix + sep + name
	}

	return name
}

// ValidateRules compiles every rule pattern and reports the invalid ones.
// Validation never halts an export; invalid rules are simply skipped
// during evaluation.
func ValidateRules(rules []NameFormatRule) []RuleIssue {
	var issues []RuleIssue

	for i, rule := range rules {
		if _, err := GlobToRegex(rule.Pattern); err != nil {
			issues = append(issues, RuleIssue{
				Index:   i,
				Pattern: rule.Pattern,
				Message: err.Error(),
			})
		}
	}

	return issues
}

// joinSegments applies a casing transform per segment and joins
func joinSegments(segments []string, sep string, transform func(string) string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s == "" {
			continue
		}
		parts = append(parts, transform(s))
	}
	return strings.Join(parts, sep)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
