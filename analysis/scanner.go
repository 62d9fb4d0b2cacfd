package analysis

import (
	"strings"

	"github.com/assembly-tolly/assembly-language-server/catalog"
)

type scanState int

const (
	scanCode scanState = iota
	scanString
	scanEscape
	scanComment
)

// parameterSeparators end an operand. Completion also splits on '*' (see
// completionParameter), hover keeps it so pointer operands stay whole.
const parameterSeparators = ",( [+])"

// trimAndGetFrontDiffCount removes leading whitespace and returns how many
// bytes were removed.
func trimAndGetFrontDiffCount(str, cutset string) (string, int) {
	strOut := strings.TrimLeft(str, cutset)
	return strOut, len(str) - len(strOut)
}

// trimLinePrefix strips indentation and a leading macro disable marker.
func trimLinePrefix(line string) (string, int) {
	trimmed, diff := trimAndGetFrontDiffCount(line, " \t")
	if strings.HasPrefix(trimmed, "!") {
		var inner int
		trimmed, inner = trimAndGetFrontDiffCount(trimmed[1:], " \t")
		diff += inner + 1
	}
	return trimmed, diff
}

type scanResult struct {
	state        scanState
	stringStart  int // index of the opening quote when inside a string
	commentStart int
}

// scanTo walks line up to (not including) end and reports the lexical state
// there. Quotes only open a string in code, a backslash inside a string
// escapes the following character and ';' in code starts a comment.
func scanTo(line string, end int) scanResult {
	res := scanResult{state: scanCode, stringStart: -1, commentStart: -1}
	var quote byte
	for i := 0; i < end && i < len(line); i++ {
		c := line[i]
		switch res.state {
		case scanCode:
			switch c {
			case '"', '\'':
				res.state = scanString
				res.stringStart = i
				quote = c
			case ';':
				res.state = scanComment
				res.commentStart = i
				return res
			}
		case scanString:
			switch c {
			case '\\':
				res.state = scanEscape
			case quote:
				res.state = scanCode
				res.stringStart = -1
			}
		case scanEscape:
			res.state = scanString
		}
	}
	return res
}

// escapeAt returns the escape sequence starting at the backslash at index i.
func escapeAt(line string, i int) (catalog.EscapeSequence, int, bool) {
	if i < 0 || i+1 >= len(line) || line[i] != '\\' {
		return catalog.EscapeSequence{}, 0, false
	}
	esc, ok := catalog.LookupEscape(line[i+1])
	if !ok {
		return catalog.EscapeSequence{}, 0, false
	}
	end := i + 2 + esc.HexDigits
	if end > len(line) {
		end = len(line)
	}
	return esc, end, true
}

// operandAt returns the bounds of the operand that contains or ends at pos.
// The operand ends at the first separator at or after pos and starts after the
// last separator before that.
func operandAt(line string, pos int, separators string) (start, end int) {
	end = len(line)
	if i := strings.IndexAny(line[pos:], separators); i != -1 {
		end = pos + i
	}
	start = strings.LastIndexAny(line[:end], separators) + 1
	return start, end
}

// lastSegment returns the part of s after the last occurrence of sep.
func lastSegment(s string, sep byte) string {
	return s[strings.LastIndexByte(s, sep)+1:]
}

// firstSegment returns the part of s before the first occurrence of sep.
func firstSegment(s string, sep byte) string {
	if i := strings.IndexByte(s, sep); i != -1 {
		return s[:i]
	}
	return s
}

// completionParameter extracts the operand being typed at the end of s.
func completionParameter(s string) string {
	p := lastSegment(s, ' ')
	p = lastSegment(p, ',')
	p = lastSegment(p, '(')
	p = firstSegment(p, ')')
	p = lastSegment(p, '[')
	p = firstSegment(p, ']')
	p = lastSegment(p, '+')
	p = lastSegment(p, '*')
	return p
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
