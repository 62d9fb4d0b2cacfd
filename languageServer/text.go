package languageServer

import (
	"strings"
	"unicode/utf8"

	"github.com/assembly-tolly/assembly-language-server/linter"
)

// Positions on the wire count UTF-16 code units, the analysis works in bytes.

func applyChanges(text string, changes []TextDocumentContentChangeEvent) string {
	for _, change := range changes {
		if change.Range == nil {
			text = change.Text
			continue
		}
		start := offsetForPosition(text, change.Range.Start)
		end := offsetForPosition(text, change.Range.End)
		if end < start {
			end = start
		}
		text = text[:start] + change.Text + text[end:]
	}
	return text
}

// offsetForPosition converts a position to a byte offset in text, clamped to
// the text.
func offsetForPosition(text string, pos linter.TextPosition) int {
	if pos.Line < 0 || pos.Char < 0 {
		return 0
	}
	i := 0
	for line := 0; line < pos.Line; line++ {
		next := strings.IndexByte(text[i:], '\n')
		if next == -1 {
			return len(text)
		}
		i += next + 1
	}
	lineEnd := strings.IndexByte(text[i:], '\n')
	if lineEnd == -1 {
		lineEnd = len(text) - i
	}
	return i + utf16ToByte(text[i:i+lineEnd], pos.Char)
}

// lineAt returns line n of text without its terminator, or "" when text has
// fewer lines.
func lineAt(text string, n int) string {
	if n < 0 {
		return ""
	}
	for ; n > 0; n-- {
		next := strings.IndexByte(text, '\n')
		if next == -1 {
			return ""
		}
		text = text[next+1:]
	}
	if end := strings.IndexByte(text, '\n'); end != -1 {
		text = text[:end]
	}
	return strings.TrimSuffix(text, "\r")
}

// utf16ToByte converts a UTF-16 column of line to a byte offset. Columns
// past the end, or inside a surrogate pair, round down.
func utf16ToByte(line string, char int) int {
	units := 0
	for i, r := range line {
		need := 1
		if r > 0xFFFF {
			need = 2
		}
		if units+need > char {
			return i
		}
		units += need
	}
	return len(line)
}

func byteToUTF16(line string, offset int) int {
	if offset > len(line) {
		offset = len(line)
	}
	units := 0
	for i := 0; i < offset; {
		r, size := utf8.DecodeRuneInString(line[i:])
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
		i += size
	}
	return units
}

func lineRange(line string, lineNumber, start, end int) linter.TextRange {
	return linter.TextRange{
		Start: linter.TextPosition{Line: lineNumber, Char: byteToUTF16(line, start)},
		End:   linter.TextPosition{Line: lineNumber, Char: byteToUTF16(line, end)},
	}
}
