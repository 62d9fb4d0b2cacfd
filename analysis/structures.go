package analysis

import (
	"sort"
	"strings"
)

type Kind int

const (
	KindNone Kind = iota
	KindMnemonic
	KindRegister
	KindLabelDefinition
	KindLabelReference
	KindNumericLiteral
	KindCharacterLiteral
	KindAssemblerVariable
	KindAssemblerConstant
	KindPredefinedMacro
	KindMacroReference
	KindMacroParameter
	KindEscapeSequence
	KindComment
	KindString
	KindAnalyzerSeverity
	KindVariableOperation
	KindCondition
	KindInvalid
)

var kindNames = [...]string{
	KindNone:              "None",
	KindMnemonic:          "Mnemonic",
	KindRegister:          "Register",
	KindLabelDefinition:   "LabelDefinition",
	KindLabelReference:    "LabelReference",
	KindNumericLiteral:    "NumericLiteral",
	KindCharacterLiteral:  "CharacterLiteral",
	KindAssemblerVariable: "AssemblerVariable",
	KindAssemblerConstant: "AssemblerConstant",
	KindPredefinedMacro:   "PredefinedMacro",
	KindMacroReference:    "MacroReference",
	KindMacroParameter:    "MacroParameter",
	KindEscapeSequence:    "EscapeSequence",
	KindComment:           "Comment",
	KindString:            "String",
	KindAnalyzerSeverity:  "AnalyzerSeverity",
	KindVariableOperation: "VariableOperation",
	KindCondition:         "Condition",
	KindInvalid:           "Invalid",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Classification describes the token under the cursor. Start and End are byte
// columns of the original line.
type Classification struct {
	Kind  Kind
	Name  string // mnemonic, register, label, variable, macro or keyword, in source casing
	Start int
	End   int

	Pointer        bool // register prefixed with '*'
	Displacement   bool // operand followed by '[...]'
	AddressLiteral bool // label reference written as ':123'
	AddressOf      bool // label reference written as ':&name'

	Base     int // 2, 10 or 16
	Negative bool
	Float    bool

	Value    uint64 // character literal as little-endian UTF-8
	Required bool   // macro parameter marked with '!'
	Escape   byte   // escape sequence character
}

// Snapshot is the symbol state reported by the most recent successful lint.
// A published Snapshot is never modified; a nil Snapshot has no symbols.
type Snapshot struct {
	Labels    map[string]uint64
	Variables []string
	Macros    []string
}

func (s *Snapshot) Label(name string) (uint64, bool) {
	if s == nil {
		return 0, false
	}
	addr, ok := s.Labels[name]
	return addr, ok
}

func (s *Snapshot) LabelNames() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.Labels))
	for name := range s.Labels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Snapshot) HasMacro(name string) bool {
	if s == nil {
		return false
	}
	for _, m := range s.Macros {
		if m == name {
			return true
		}
	}
	return false
}

func (s *Snapshot) MacroNames() []string {
	if s == nil {
		return nil
	}
	return s.Macros
}

func (s *Snapshot) VariableNames() []string {
	if s == nil {
		return nil
	}
	return s.Variables
}

// SplitLines splits document text into lines without their terminators.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
