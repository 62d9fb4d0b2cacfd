// Package analysis works out what the cursor is on in a line of AssEmbly
// source and builds hover text, completion candidates and semantic tokens
// from it.
package analysis

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/assembly-tolly/assembly-language-server/catalog"
)

// Classify returns the lexical category of the token at byte offset of line.
// snap supplies the macro names known from the last lint and may be nil.
func Classify(line string, offset int, snap *Snapshot) Classification {
	trimmed, shift := trimLinePrefix(line)
	trimmed = strings.TrimRight(trimmed, " \t\r")
	pos := offset - shift
	if pos < 0 || pos > len(trimmed) {
		return Classification{}
	}

	c := classifyTrimmed(trimmed, pos, snap)
	if c.Kind != KindNone {
		c.Start += shift
		c.End += shift
	}
	return c
}

func classifyTrimmed(line string, pos int, snap *Snapshot) Classification {
	scan := scanTo(line, pos)
	switch scan.state {
	case scanComment:
		return Classification{Kind: KindComment, Start: scan.commentStart, End: len(line)}
	case scanEscape:
		if esc, end, ok := escapeAt(line, pos-1); ok {
			return Classification{Kind: KindEscapeSequence, Escape: esc.Char, Start: pos - 1, End: end}
		}
		return Classification{Kind: KindString, Start: scan.stringStart, End: len(line)}
	case scanString:
		if esc, end, ok := escapeAt(line, pos); ok {
			return Classification{Kind: KindEscapeSequence, Escape: esc.Char, Start: pos, End: end}
		}
		return Classification{Kind: KindString, Start: scan.stringStart, End: len(line)}
	}

	start, end := operandAt(line, pos, parameterSeparators)
	token := line[start:end]
	if strings.TrimSpace(token) == "" {
		return Classification{}
	}
	upper := catalog.Upper(token)
	sliced := line[:end]
	c := Classification{Start: start, End: end}
	displacement := end < len(line) && line[end] == '['

	// mnemonics are only ever the first word
	if !strings.Contains(sliced, " ") {
		if m, ok := catalog.LookupMnemonic(upper); ok {
			c.Kind = KindMnemonic
			c.Name = m.Name
			return c
		}
	}

	regName := token
	if token[0] == '*' || token[0] == '-' {
		regName = token[1:]
	}
	if reg, ok := catalog.LookupRegister(regName); ok {
		c.Kind = KindRegister
		c.Name = reg.Name
		c.Pointer = token[0] == '*'
		c.Displacement = displacement
		return c
	}

	if token[0] == ':' {
		if !strings.Contains(sliced, " ") {
			c.Kind = KindLabelDefinition
			c.Name = token[1:]
			return c
		}
		c.Kind = KindLabelReference
		c.Displacement = displacement
		switch {
		case len(token) >= 2 && isDigit(token[1]):
			c.AddressLiteral = true
			c.Name = token[1:]
		case len(token) >= 2 && token[1] == '&':
			c.AddressOf = true
			c.Name = token[2:]
		default:
			c.Name = token[1:]
		}
		return c
	}

	if len(token) >= 3 && token[0] == '\'' && token[len(token)-1] == '\'' {
		value, ok := characterLiteralValue(token[1 : len(token)-1])
		if !ok {
			return Classification{}
		}
		c.Kind = KindCharacterLiteral
		c.Value = value
		return c
	}

	if isDigit(token[0]) || token[0] == '.' || token[0] == '-' {
		c.Kind = KindNumericLiteral
		c.Base = 10
		switch {
		case strings.HasPrefix(upper, "0X"):
			c.Base = 16
		case strings.HasPrefix(upper, "0B"):
			c.Base = 2
		default:
			c.Negative = token[0] == '-'
			c.Float = strings.Contains(token, ".")
		}
		return c
	}

	if token[0] == '@' {
		if len(token) >= 2 && token[1] == '!' {
			c.Kind = KindAssemblerConstant
			c.Name = token[2:]
			return c
		}
		c.Kind = KindAssemblerVariable
		c.Name = token[1:]
		return c
	}

	if token[0] == '#' {
		if name, ok := catalog.MatchPredefinedMacro(upper[1:]); ok {
			c.Kind = KindPredefinedMacro
			c.Name = name
			return c
		}
	}

	if token[0] == '$' {
		c.Kind = KindMacroParameter
		c.Name = token[1:]
		c.Required = strings.Contains(token, "!")
		return c
	}

	if snap.HasMacro(token) {
		c.Kind = KindMacroReference
		c.Name = token
		return c
	}

	upperLine := catalog.Upper(line)
	switch {
	case strings.HasPrefix(upperLine, "%ANALYZER"):
		if catalog.IsAnalyzerSeverity(upper) {
			c.Kind = KindAnalyzerSeverity
			c.Name = upper
			return c
		}
	case strings.HasPrefix(upperLine, "%VAROP"):
		if op, ok := catalog.LookupVariableOperation(upper); ok {
			c.Kind = KindVariableOperation
			c.Name = op.Name
			return c
		}
	case strings.HasPrefix(upperLine, "%IF"), strings.HasPrefix(upperLine, "%ELSE_IF"), strings.HasPrefix(upperLine, "%WHILE"):
		if cond, ok := catalog.LookupCondition(upper); ok {
			c.Kind = KindCondition
			c.Name = cond.Name
			return c
		}
	}

	c.Kind = KindInvalid
	c.Name = token
	return c
}

// characterLiteralValue packs the UTF-8 encoding of a character literal body
// into a uint64, first byte lowest. Bytes past the eighth are dropped.
func characterLiteralValue(body string) (uint64, bool) {
	char := body
	if len(body) >= 2 && body[0] == '\\' {
		switch body[1] {
		case '\'', '"', '\\', '@':
			char = body[1:2]
		case '0':
			char = "\x00"
		case 'a':
			char = "\a"
		case 'b':
			char = "\b"
		case 'f':
			char = "\f"
		case 'n':
			char = "\n"
		case 'r':
			char = "\r"
		case 't':
			char = "\t"
		case 'v':
			char = "\v"
		case 'u', 'U':
			esc, _ := catalog.LookupEscape(body[1])
			if len(body) < 2+esc.HexDigits {
				return 0, false
			}
			cp, err := strconv.ParseUint(body[2:2+esc.HexDigits], 16, 32)
			if err != nil || cp > utf8.MaxRune {
				return 0, false
			}
			char = string(utf8.AppendRune(nil, rune(cp)))
		default:
			return 0, false
		}
	}

	var value uint64
	for i := 0; i < len(char) && i < 8; i++ {
		value |= uint64(char[i]) << (8 * i)
	}
	return value, true
}
