// Package catalog holds the static AssEmbly instruction, register and
// directive operand tables.
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	mnemonicMap   = make(map[string]Mnemonic, len(mnemonicTable)) // upper case name to mnemonic
	registerMap   = make(map[string]Register, len(registerTable)) // lower case name to register
	escapeMap     = make(map[byte]EscapeSequence, len(EscapeSequences))
	varopMap      = make(map[string]Keyword, len(VariableOperations))
	conditionMap  = make(map[string]Keyword, len(Conditions))
	mnemonicNames []string
	registerNames []string
)

func init() {
	for _, row := range mnemonicTable {
		mnemonicMap[row.name] = Mnemonic{
			Name:                row.name,
			OperandCombinations: row.positions,
			ExtensionSet:        row.set,
			Description:         row.description,
		}
		mnemonicNames = append(mnemonicNames, row.name)
	}
	for _, reg := range registerTable {
		registerMap[reg.Name] = reg
		registerNames = append(registerNames, reg.Name)
	}
	for _, esc := range EscapeSequences {
		escapeMap[esc.Char] = esc
	}
	for _, op := range VariableOperations {
		varopMap[op.Name] = op
	}
	for _, cond := range Conditions {
		conditionMap[cond.Name] = cond
	}
	sort.Strings(mnemonicNames)
	sort.Strings(registerNames)
}

// Upper folds s the way keyword comparisons expect. A Caser is stateful, so a
// new one is made for every call.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Describe looks name up as a mnemonic first, then as a register. Both
// lookups ignore case.
func Describe(name string) (Entry, bool) {
	if m, ok := LookupMnemonic(name); ok {
		return m, true
	}
	if r, ok := LookupRegister(name); ok {
		return r, true
	}
	return nil, false
}

func LookupMnemonic(name string) (Mnemonic, bool) {
	m, ok := mnemonicMap[Upper(name)]
	return m, ok
}

func LookupRegister(name string) (Register, bool) {
	r, ok := registerMap[Lower(name)]
	return r, ok
}

// MnemonicNames returns every instruction and directive name, sorted.
func MnemonicNames() []string {
	return append([]string(nil), mnemonicNames...)
}

// RegisterNames returns every register name, sorted.
func RegisterNames() []string {
	return append([]string(nil), registerNames...)
}

func LookupEscape(c byte) (EscapeSequence, bool) {
	esc, ok := escapeMap[c]
	return esc, ok
}

// LookupVariableOperation expects an upper case name.
func LookupVariableOperation(name string) (Keyword, bool) {
	op, ok := varopMap[name]
	return op, ok
}

// LookupCondition expects an upper case name.
func LookupCondition(name string) (Keyword, bool) {
	cond, ok := conditionMap[name]
	return cond, ok
}

// IsAnalyzerSeverity expects an upper case name.
func IsAnalyzerSeverity(name string) bool {
	for _, s := range AnalyzerSeverities {
		if s == name {
			return true
		}
	}
	return false
}

// MatchPredefinedMacro reports whether ref (without the leading '#') starts
// with the name of a predefined macro.
func MatchPredefinedMacro(ref string) (string, bool) {
	for _, m := range PredefinedMacros {
		if strings.HasPrefix(ref, m) {
			return m, true
		}
	}
	return "", false
}
