package analysis_test

import (
	"strings"
	"testing"

	"github.com/assembly-tolly/assembly-language-server/analysis"
)

func TestHoverLabelAddress(t *testing.T) {
	snap := &analysis.Snapshot{Labels: map[string]uint64{"myLabel": 26}}
	res, ok := analysis.Hover("MVQ rg0, :myLabel", 12, snap)
	if !ok {
		t.Fatalf("Expected hover for label reference")
	}
	if res.Markdown != "## Label Reference\nLabel points to address `0x1A`" {
		t.Errorf("Unexpected label hover: %q", res.Markdown)
	}
	if res.Start != 9 || res.End != 17 {
		t.Errorf("Expected range 9..17, got %d..%d", res.Start, res.End)
	}

	res, ok = analysis.Hover(":myLabel", 3, snap)
	if !ok || !strings.HasPrefix(res.Markdown, "## Label Definition\nLabel points to address `0x1A`") {
		t.Errorf("Unexpected label definition hover: %q", res.Markdown)
	}

	res, _ = analysis.Hover("MVQ rg0, :other", 12, snap)
	if res.Markdown != "## Label Reference" {
		t.Errorf("Expected no address for unknown label, got %q", res.Markdown)
	}
}

func TestHoverRegisterPointer(t *testing.T) {
	res, ok := analysis.Hover("MVQ *rg1[8], 5", 6, nil)
	if !ok {
		t.Fatalf("Expected hover for register")
	}
	if !strings.HasPrefix(res.Markdown, "## Register:\n### General 1") {
		t.Errorf("Unexpected register hover: %q", res.Markdown)
	}
	if !strings.Contains(res.Markdown, "treated as a pointer") {
		t.Errorf("Expected pointer note in %q", res.Markdown)
	}
	if !strings.Contains(res.Markdown, "added to the register value at runtime") {
		t.Errorf("Expected displacement note in %q", res.Markdown)
	}
}

func TestHoverMnemonicOperands(t *testing.T) {
	res, ok := analysis.Hover("mvq rg0, 5", 1, nil)
	if !ok {
		t.Fatalf("Expected hover for mnemonic")
	}
	expectedTail := "**This instruction is part of the `Base Instruction Set`**\n\n### Operand Requirements:\n\n" +
		"`Register | Address | Pointer`, `Register | Literal | Address | Pointer`"
	if !strings.HasPrefix(res.Markdown, "## Move Quad Word") || !strings.HasSuffix(res.Markdown, expectedTail) {
		t.Errorf("Unexpected MVQ hover: %q", res.Markdown)
	}

	res, _ = analysis.Hover("CAL :func", 0, nil)
	if !strings.HasSuffix(res.Markdown, "`Address | Pointer`, `Register | Literal | Address | Pointer (Optional)`") {
		t.Errorf("Unexpected CAL hover: %q", res.Markdown)
	}

	res, _ = analysis.Hover("HLT", 2, nil)
	if res.Markdown != "## Halt\n\n**This instruction is part of the `Base Instruction Set`**" {
		t.Errorf("Unexpected HLT hover: %q", res.Markdown)
	}
}

func TestHoverNothingToShow(t *testing.T) {
	tests := []struct {
		line   string
		offset int
	}{
		{"HLT ; stop here", 8},
		{`%DAT "text"`, 8},
		{"   ", 1},
		{"MVQ rg0,  rg1", 9},
	}
	for _, test := range tests {
		if res, ok := analysis.Hover(test.line, test.offset, nil); ok {
			t.Errorf("%q at %d: expected no hover, got %q", test.line, test.offset, res.Markdown)
		}
	}
}

func TestHoverUnknownSymbol(t *testing.T) {
	res, ok := analysis.Hover("MVQ rg0, foo", 10, nil)
	if !ok {
		t.Fatalf("Expected hover for unknown symbol")
	}
	if !strings.HasPrefix(res.Markdown, "## Unknown Symbol\n\n*`foo` is not a known instruction") {
		t.Errorf("Unexpected unknown symbol hover: %q", res.Markdown)
	}
}

func TestHoverLiterals(t *testing.T) {
	tests := []struct {
		line     string
		offset   int
		expected string
	}{
		{"MVB rg0, 'A'", 9, "## Character Literal\n\n**Numeric value:** `65`"},
		{"MVQ rg0, 0xFF", 11, "## Numeric Literal\n\n*`0x`: Hexadecimal number*"},
		{"MVQ rg0, 0b11", 11, "## Numeric Literal\n\n*`0b`: Binary number*"},
		{"MVQ rg0, -1.5", 11, "## Numeric Literal\n\n*`-` and `.`: Negative floating point number*"},
		{"MVQ rg0, 12", 10, "## Numeric Literal"},
		{`%DAT "a\tb"`, 7, "## Escape Sequence:\n### Horizontal tab"},
		{"%VAROP ADD, n, 1", 8, "## Variable Operation:\n### Add"},
		{"%IF NDEF, n", 5, "## Condition:\n### Not Defined"},
		{"JMP :0x10[4]", 6, "## Address Literal\n\n*`[...]`: Contents of the square brackets will be added to the address value at assemble-time to get the final address*"},
		{"%MACRO m, $0!", 11, "## Macro Parameter Reference\n\n*`!`: Required parameter*"},
	}
	for _, test := range tests {
		res, ok := analysis.Hover(test.line, test.offset, nil)
		if !ok {
			t.Errorf("%q at %d: expected hover", test.line, test.offset)
			continue
		}
		if res.Markdown != test.expected {
			t.Errorf("%q at %d: expected %q, got %q", test.line, test.offset, test.expected, res.Markdown)
		}
	}
}
