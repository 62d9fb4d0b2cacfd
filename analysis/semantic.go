package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// legend shared with the client at initialization
var (
	SemanticTokenTypes     = []string{"variable"}
	SemanticTokenModifiers = []string{"declaration"}
)

const (
	TokenTypeVariable        = 0
	TokenModifierDeclaration = 1 << 0
)

var macroDefinitionLine = regexp.MustCompile(`(?i)^\s*%MACRO`)

// SemanticToken marks one occurrence of a macro name. Start and Length are in
// bytes.
type SemanticToken struct {
	Line        int
	Start       int
	Length      int
	Declaration bool
}

// SemanticTokens finds every occurrence of every known macro name. All
// occurrences on a %MACRO line are declarations. The result is ordered by
// line, then column.
func SemanticTokens(lines []string, snap *Snapshot) []SemanticToken {
	macros := snap.MacroNames()
	var tokens []SemanticToken
	for i, line := range lines {
		declaration := macroDefinitionLine.MatchString(line)
		for _, macro := range macros {
			if macro == "" {
				continue
			}
			for from := 0; from <= len(line); {
				idx := strings.Index(line[from:], macro)
				if idx == -1 {
					break
				}
				start := from + idx
				tokens = append(tokens, SemanticToken{
					Line:        i,
					Start:       start,
					Length:      len(macro),
					Declaration: declaration,
				})
				from = start + len(macro)
			}
		}
	}
	sort.SliceStable(tokens, func(a, b int) bool {
		if tokens[a].Line != tokens[b].Line {
			return tokens[a].Line < tokens[b].Line
		}
		return tokens[a].Start < tokens[b].Start
	})
	return tokens
}
