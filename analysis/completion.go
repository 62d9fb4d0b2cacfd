package analysis

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/assembly-tolly/assembly-language-server/catalog"
)

type Category int

const (
	CategoryMnemonic Category = iota
	CategoryDirective
	CategoryRegister
	CategoryLabel
	CategoryVariable
	CategoryConstant
	CategoryPredefinedMacro
	CategoryMacro
	CategoryEscape
	CategoryAnalyzerSeverity
	CategoryVariableOperation
	CategoryCondition
	CategoryFile
	CategoryFolder
)

type Candidate struct {
	Label    string
	Category Category
	// byte columns of the text the candidate replaces, set for mnemonics only
	HasRange bool
	Start    int
	End      int
}

type CompletionRequest struct {
	Line        string
	Offset      int    // byte offset of the cursor in Line
	DocumentDir string // directory relative paths in strings resolve against
	Snapshot    *Snapshot
}

// Complete lists the candidates that fit the cursor position. Documentation
// is not filled in here, see Resolve.
func Complete(req CompletionRequest) []Candidate {
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(req.Line) {
		offset = len(req.Line)
	}
	// trailing whitespace is kept so "MVQ |" completes an operand
	before := strings.TrimLeft(req.Line[:offset], " \t")

	if strings.ContainsAny(before, "\"'") {
		return stringCandidates(strings.TrimRight(before, " \t"), req.DocumentDir)
	}
	// label definitions and comments get nothing
	if strings.HasPrefix(before, ":") || strings.Contains(before, ";") {
		return nil
	}

	typed := before
	if strings.HasPrefix(typed, "!") {
		typed = strings.TrimLeft(typed[1:], " \t")
	}
	if !strings.ContainsAny(typed, " \t(") {
		start := offset
		if typed != "" {
			start = strings.LastIndex(req.Line[:offset], typed)
		}
		return mnemonicCandidates(catalog.Upper(typed), start, offset)
	}

	param := completionParameter(before)
	if param != "" && (param[0] == '.' || isDigit(param[0])) {
		return nil
	}

	var candidates []Candidate
	snap := req.Snapshot
	switch {
	case strings.HasPrefix(param, "@!"):
		candidates = appendMatching(candidates, catalog.AssemblerConstants, param[2:], CategoryConstant)
	case strings.HasPrefix(param, "@"):
		candidates = appendMatching(candidates, snap.VariableNames(), param[1:], CategoryVariable)
	case strings.HasPrefix(param, "#"):
		candidates = appendMatching(candidates, catalog.PredefinedMacros, param[1:], CategoryPredefinedMacro)
	case strings.HasPrefix(param, ":"):
		candidates = appendMatching(candidates, snap.LabelNames(), param[1:], CategoryLabel)
	default:
		candidates = appendMatching(candidates, catalog.RegisterNames(), param, CategoryRegister)
	}
	candidates = appendMatching(candidates, snap.MacroNames(), param, CategoryMacro)

	upperBefore := catalog.Upper(before)
	switch {
	case strings.Contains(upperBefore, "%ANALYZER"):
		candidates = appendMatching(candidates, catalog.AnalyzerSeverities, param, CategoryAnalyzerSeverity)
	case strings.Contains(upperBefore, "%VAROP"):
		candidates = appendMatching(candidates, keywordNames(catalog.VariableOperations), param, CategoryVariableOperation)
	case strings.Contains(upperBefore, "%IF"), strings.Contains(upperBefore, "%ELSE_IF"), strings.Contains(upperBefore, "%WHILE"):
		candidates = appendMatching(candidates, keywordNames(catalog.Conditions), param, CategoryCondition)
	}
	return candidates
}

func mnemonicCandidates(typed string, start, end int) []Candidate {
	var candidates []Candidate
	for _, name := range catalog.MnemonicNames() {
		if !strings.Contains(name, typed) {
			continue
		}
		category := CategoryMnemonic
		if strings.HasPrefix(name, "%") {
			category = CategoryDirective
		}
		candidates = append(candidates, Candidate{
			Label:    name,
			Category: category,
			HasRange: true,
			Start:    start,
			End:      end,
		})
	}
	return candidates
}

// appendMatching adds every name containing filter, ignoring case.
func appendMatching(candidates []Candidate, names []string, filter string, category Category) []Candidate {
	filter = catalog.Upper(filter)
	for _, name := range names {
		if filter != "" && !strings.Contains(catalog.Upper(name), filter) {
			continue
		}
		candidates = append(candidates, Candidate{Label: name, Category: category})
	}
	return candidates
}

func keywordNames(keywords []catalog.Keyword) []string {
	names := make([]string, len(keywords))
	for i, k := range keywords {
		names[i] = k.Name
	}
	return names
}

func stringCandidates(before, documentDir string) []Candidate {
	var candidates []Candidate
	if strings.HasSuffix(before, "\\") {
		for _, esc := range catalog.EscapeSequences {
			candidates = append(candidates, Candidate{Label: string(esc.Char), Category: CategoryEscape})
		}
	}
	return append(candidates, pathCandidates(before, documentDir)...)
}

// pathCandidates lists the directory named by the path typed so far, or its
// parent. Any filesystem error gives no candidates.
func pathCandidates(before, documentDir string) []Candidate {
	typed := before[strings.Index(before, "\"")+1:]
	typed = strings.Replace(typed, "\\\\", "/", 1)
	typed = strings.Replace(typed, "\\", "", 1)
	if !filepath.IsAbs(typed) {
		if documentDir == "" {
			return nil
		}
		typed = filepath.Join(documentDir, typed)
	}

	listPath := ""
	if isDir(typed) {
		listPath = typed
	} else if parent := filepath.Dir(typed); isDir(parent) {
		listPath = parent
	}
	if listPath == "" {
		return nil
	}

	entries, err := os.ReadDir(listPath)
	if err != nil {
		return nil
	}
	var candidates []Candidate
	for _, entry := range entries {
		info, err := os.Stat(filepath.Join(listPath, entry.Name()))
		if err != nil {
			continue
		}
		category := CategoryFile
		if info.IsDir() {
			category = CategoryFolder
		}
		candidates = append(candidates, Candidate{
			Label:    strings.Replace(entry.Name(), "\\", "\\\\", 1),
			Category: category,
		})
	}
	return candidates
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Resolve produces the documentation shown when a candidate is highlighted.
func Resolve(c Candidate, snap *Snapshot) string {
	switch c.Category {
	case CategoryMnemonic, CategoryDirective:
		return MnemonicDescription(c.Label)
	case CategoryRegister:
		return RegisterDescription(c.Label)
	case CategoryLabel:
		return LabelDescription(c.Label, false, snap)
	case CategoryEscape:
		if len(c.Label) == 1 {
			return EscapeDescription(c.Label[0])
		}
	case CategoryVariableOperation:
		return VariableOperationDescription(c.Label)
	case CategoryCondition:
		return ConditionDescription(c.Label)
	}
	return ""
}
