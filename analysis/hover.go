package analysis

import "fmt"

type HoverResult struct {
	Markdown string
	// byte columns of the hovered token in the original line
	Start int
	End   int
}

// Hover builds the hover text for the token at byte offset of line. It
// returns false when there is nothing to show: whitespace, comments and
// strings.
func Hover(line string, offset int, snap *Snapshot) (HoverResult, bool) {
	c := Classify(line, offset, snap)
	text, ok := describeClassification(c, snap)
	if !ok {
		return HoverResult{}, false
	}
	return HoverResult{Markdown: text, Start: c.Start, End: c.End}, true
}

func describeClassification(c Classification, snap *Snapshot) (string, bool) {
	switch c.Kind {
	case KindMnemonic:
		return MnemonicDescription(c.Name), true
	case KindRegister:
		text := RegisterDescription(c.Name)
		if c.Pointer {
			text += hoverInfoFormats.registerPointer
		}
		if c.Displacement {
			text += hoverInfoFormats.registerDisplacement
		}
		return text, true
	case KindLabelDefinition:
		return LabelDescription(c.Name, true, snap), true
	case KindLabelReference:
		if c.AddressLiteral {
			text := hoverInfoFormats.addressLiteral
			if c.Displacement {
				text += hoverInfoFormats.addressDisplacement
			}
			return text, true
		}
		text := LabelDescription(c.Name, false, snap)
		if c.AddressOf {
			text += hoverInfoFormats.labelAddressOf
		}
		if c.Displacement {
			text += hoverInfoFormats.labelDisplacement
		}
		return text, true
	case KindCharacterLiteral:
		return fmt.Sprintf(hoverInfoFormats.characterLiteral, c.Value), true
	case KindNumericLiteral:
		text := hoverInfoFormats.numericLiteral
		switch {
		case c.Base == 16:
			text += hoverInfoFormats.hexLiteral
		case c.Base == 2:
			text += hoverInfoFormats.binaryLiteral
		case c.Negative && c.Float:
			text += hoverInfoFormats.negativeFloat
		case c.Negative:
			text += hoverInfoFormats.negativeLiteral
		case c.Float:
			text += hoverInfoFormats.floatLiteral
		}
		return text, true
	case KindAssemblerConstant:
		return hoverInfoFormats.assemblerConstant, true
	case KindAssemblerVariable:
		return hoverInfoFormats.assemblerVariable, true
	case KindPredefinedMacro:
		return hoverInfoFormats.predefinedMacro, true
	case KindMacroParameter:
		text := hoverInfoFormats.macroParameter
		if c.Required {
			text += hoverInfoFormats.requiredParameter
		}
		return text, true
	case KindMacroReference:
		return hoverInfoFormats.macroReference, true
	case KindEscapeSequence:
		return EscapeDescription(c.Escape), true
	case KindAnalyzerSeverity:
		return hoverInfoFormats.analyzerSeverity, true
	case KindVariableOperation:
		return VariableOperationDescription(c.Name), true
	case KindCondition:
		return ConditionDescription(c.Name), true
	case KindInvalid:
		return fmt.Sprintf(hoverInfoFormats.unknownSymbol, c.Name), true
	}
	// comments, strings and whitespace
	return "", false
}
