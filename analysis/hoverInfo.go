package analysis

import (
	"fmt"
	"strings"

	"github.com/assembly-tolly/assembly-language-server/catalog"
)

type hoverInfoFormatsType struct {
	extensionSet        string
	operandRequirements string
	optionalOperand     string

	register             string
	registerPointer      string
	registerDisplacement string

	labelDefinition     string
	labelReference      string
	labelAddress        string
	labelAddressOf      string
	labelDisplacement   string
	addressLiteral      string
	addressDisplacement string

	escapeSequence    string
	variableOperation string
	condition         string
	analyzerSeverity  string

	characterLiteral string
	numericLiteral   string
	hexLiteral       string
	binaryLiteral    string
	negativeFloat    string
	negativeLiteral  string
	floatLiteral     string

	assemblerConstant string
	assemblerVariable string
	predefinedMacro   string
	macroParameter    string
	requiredParameter string
	macroReference    string
	unknownSymbol     string
}

var hoverInfoFormats = hoverInfoFormatsType{
	extensionSet:        "\n\n**This instruction is part of the `%s`**",
	operandRequirements: "\n\n### Operand Requirements:\n\n",
	optionalOperand:     " (Optional)",

	register:             "## Register:\n### %s",
	registerPointer:      "\n\n*`*`: Register contents will be treated as a pointer to address in memory*",
	registerDisplacement: "\n\n*`[...]`: Contents of the square brackets will be added to the register value at runtime to get the final address*",

	labelDefinition:     "## Label Definition",
	labelReference:      "## Label Reference",
	labelAddress:        "\nLabel points to address `0x%X`",
	labelAddressOf:      "\n\n*`&`: Address corresponding to label will be treated as a literal numeric value*",
	labelDisplacement:   "\n\n*`[...]`: Contents of the square brackets will be added to the label value at assemble-time to get the final address*",
	addressLiteral:      "## Address Literal",
	addressDisplacement: "\n\n*`[...]`: Contents of the square brackets will be added to the address value at assemble-time to get the final address*",

	escapeSequence:    "## Escape Sequence:\n### %s",
	variableOperation: "## Variable Operation:\n### %s",
	condition:         "## Condition:\n### %s",
	analyzerSeverity:  "## Analyzer Severity",

	characterLiteral: "## Character Literal\n\n**Numeric value:** `%d`",
	numericLiteral:   "## Numeric Literal",
	hexLiteral:       "\n\n*`0x`: Hexadecimal number*",
	binaryLiteral:    "\n\n*`0b`: Binary number*",
	negativeFloat:    "\n\n*`-` and `.`: Negative floating point number*",
	negativeLiteral:  "\n\n*`-`: Signed negative number*",
	floatLiteral:     "\n\n*`.`: Floating point number*",

	assemblerConstant: "## Assembler Constant",
	assemblerVariable: "## Assembler Variable",
	predefinedMacro:   "## Pre-defined Macro",
	macroParameter:    "## Macro Parameter Reference",
	requiredParameter: "\n\n*`!`: Required parameter*",
	macroReference:    "## Macro Reference",
	unknownSymbol:     "## Unknown Symbol\n\n*`%s` is not a known instruction, register or operand. Unless this is a macro defined since the last save, it will not assemble.*",
}

// MnemonicDescription renders the documentation of an instruction or
// directive, including its operand requirements.
func MnemonicDescription(name string) string {
	m, ok := catalog.LookupMnemonic(name)
	if !ok {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(m.Description)
	fmt.Fprintf(&sb, hoverInfoFormats.extensionSet, m.ExtensionSet)
	if len(m.OperandCombinations) == 0 {
		return sb.String()
	}
	sb.WriteString(hoverInfoFormats.operandRequirements)
	for i, position := range m.OperandCombinations {
		sb.WriteByte('`')
		for j, kind := range position {
			if kind == catalog.OperandOptional {
				sb.WriteString(hoverInfoFormats.optionalOperand)
				continue
			}
			sb.WriteString(kind.String())
			if j < len(position)-1 && position[j+1] != catalog.OperandOptional {
				sb.WriteString(" | ")
			}
		}
		sb.WriteByte('`')
		if i < len(m.OperandCombinations)-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func RegisterDescription(name string) string {
	reg, ok := catalog.LookupRegister(name)
	if !ok {
		return ""
	}
	return fmt.Sprintf(hoverInfoFormats.register, reg.Description)
}

// LabelDescription includes the label's address when the snapshot knows it.
func LabelDescription(name string, definition bool, snap *Snapshot) string {
	text := hoverInfoFormats.labelReference
	if definition {
		text = hoverInfoFormats.labelDefinition
	}
	if addr, ok := snap.Label(name); ok {
		text += fmt.Sprintf(hoverInfoFormats.labelAddress, addr)
	}
	return text
}

func EscapeDescription(c byte) string {
	esc, ok := catalog.LookupEscape(c)
	if !ok {
		return ""
	}
	return fmt.Sprintf(hoverInfoFormats.escapeSequence, esc.Description)
}

func VariableOperationDescription(name string) string {
	op, ok := catalog.LookupVariableOperation(name)
	if !ok {
		return ""
	}
	return fmt.Sprintf(hoverInfoFormats.variableOperation, op.Description)
}

func ConditionDescription(name string) string {
	cond, ok := catalog.LookupCondition(name)
	if !ok {
		return ""
	}
	return fmt.Sprintf(hoverInfoFormats.condition, cond.Description)
}
