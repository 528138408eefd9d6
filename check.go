package varexport

import (
	"fmt"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Issue severities reported by the checker
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// CheckIssue is one finding in an emitted CSS file
type CheckIssue struct {
	Line     int
	Column   int
	Severity string
	Message  string
}

// CheckResult contains the verification findings for one emitted file
type CheckResult struct {
	CustomProperties int // declarations found
	Issues           []CheckIssue
}

// ErrorCount returns the number of error-severity issues
func (r *CheckResult) ErrorCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}

// CheckFile reads an emitted CSS file and verifies it
func CheckFile(path string) (*CheckResult, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return CheckCSS(string(content)), nil
}

// CheckCSS tokenizes emitted CSS and verifies it: counts custom property
// declarations, flags duplicate names, and surfaces the engine's inline
// defect markers (unresolved alias / circular reference) so exports of a
// broken graph are caught in CI.
func CheckCSS(content string) *CheckResult {
	result := &CheckResult{}
	lexer := css.NewLexer(parse.NewInputString(content))

	seen := make(map[string]bool)
	offset := 0

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			break
		}

		tokenStart := offset
		offset += len(text)

		switch {
		case isCustomPropertyName(tt, text):
			name := string(text)
			result.CustomProperties++
			if seen[name] {
				result.Issues = append(result.Issues, issueAt(content, tokenStart,
					SeverityWarning, fmt.Sprintf("duplicate custom property %s", name)))
			}
			seen[name] = true

		case tt == css.CommentToken:
			comment := string(text)
			if strings.Contains(comment, "unresolved alias") {
				result.Issues = append(result.Issues, issueAt(content, tokenStart,
					SeverityError, "unresolved alias marker in output"))
			}
			if strings.Contains(comment, "circular reference") {
				result.Issues = append(result.Issues, issueAt(content, tokenStart,
					SeverityError, "circular reference marker in output"))
			}
		}
	}

	return result
}

// isCustomPropertyName matches a custom property declaration name token.
// Depending on context the lexer reports --x either as a dedicated token
// or as a plain ident.
func isCustomPropertyName(tt css.TokenType, text []byte) bool {
	if tt == css.CustomPropertyNameToken {
		return true
	}
	return tt == css.IdentToken && strings.HasPrefix(string(text), "--")
}

// issueAt computes the 1-based line/column for a byte offset
func issueAt(content string, offset int, severity, message string) CheckIssue {
	line := 1
	col := 1
	for i := 0; i < offset && i < len(content); i++ {
		if content[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return CheckIssue{Line: line, Column: col, Severity: severity, Message: message}
}
