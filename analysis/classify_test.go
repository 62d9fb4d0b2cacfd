package analysis_test

import (
	"strings"
	"testing"

	"github.com/assembly-tolly/assembly-language-server/analysis"
)

func TestClassifyLabelReference(t *testing.T) {
	line := "MVQ rg0, :myLabel"
	c := analysis.Classify(line, strings.Index(line, "myLabel")+2, nil)
	expected := analysis.Classification{
		Kind:  analysis.KindLabelReference,
		Name:  "myLabel",
		Start: 9,
		End:   17,
	}
	validateClassification(t, c, expected)
}

func TestClassifyPointerRegisterWithDisplacement(t *testing.T) {
	c := analysis.Classify("*rg1[4]", 2, nil)
	validateClassification(t, c, analysis.Classification{
		Kind:         analysis.KindRegister,
		Name:         "rg1",
		Start:        0,
		End:          4,
		Pointer:      true,
		Displacement: true,
	})
}

func TestClassifyCharacterLiterals(t *testing.T) {
	tests := []struct {
		literal string
		value   uint64
	}{
		{`'\n'`, 10},
		{`'a'`, 97},
		{`'\''`, 39},
		{`'\0'`, 0},
		{`'é'`, 43459},
		{`'\u` + `00e9'`, 43459},
		{`'\U0001F600'`, 2157486064},
	}
	for _, test := range tests {
		line := "MVB rg0, " + test.literal
		c := analysis.Classify(line, strings.Index(line, "'"), nil)
		if c.Kind != analysis.KindCharacterLiteral {
			t.Errorf("Expected %s to be a character literal, got %s", test.literal, c.Kind)
			continue
		}
		if c.Value != test.value {
			t.Errorf("Expected %s to have value %d, got %d", test.literal, test.value, c.Value)
		}
	}

	for _, bad := range []string{`'\q'`, `'\u12'`, `'\UFFFFFFFF'`, `'\uzzzz'`} {
		line := "MVB rg0, " + bad
		if c := analysis.Classify(line, strings.Index(line, "'"), nil); c.Kind != analysis.KindNone {
			t.Errorf("Expected malformed literal %s to give no classification, got %s", bad, c.Kind)
		}
	}
}

func TestClassifyMnemonic(t *testing.T) {
	validateClassification(t, analysis.Classify("    mvq rg0, 5", 5, nil), analysis.Classification{
		Kind:  analysis.KindMnemonic,
		Name:  "MVQ",
		Start: 4,
		End:   7,
	})
	validateClassification(t, analysis.Classify("\t! %ENDMACRO", 5, nil), analysis.Classification{
		Kind:  analysis.KindMnemonic,
		Name:  "%ENDMACRO",
		Start: 3,
		End:   12,
	})
	// an operand spelled like a mnemonic is not one
	if c := analysis.Classify("PSH add", 5, nil); c.Kind != analysis.KindInvalid {
		t.Errorf("Expected operand \"add\" to be invalid, got %s", c.Kind)
	}
}

func TestClassifyLabels(t *testing.T) {
	validateClassification(t, analysis.Classify(":start", 2, nil), analysis.Classification{
		Kind:  analysis.KindLabelDefinition,
		Name:  "start",
		Start: 0,
		End:   6,
	})
	validateClassification(t, analysis.Classify("JMP :0x10", 6, nil), analysis.Classification{
		Kind:           analysis.KindLabelReference,
		Name:           "0x10",
		Start:          4,
		End:            9,
		AddressLiteral: true,
	})
	validateClassification(t, analysis.Classify("MVQ rg0, :&data[4]", 12, nil), analysis.Classification{
		Kind:         analysis.KindLabelReference,
		Name:         "data",
		Start:        9,
		End:          15,
		AddressOf:    true,
		Displacement: true,
	})
}

func TestClassifyNumericLiterals(t *testing.T) {
	tests := []struct {
		operand  string
		base     int
		negative bool
		float    bool
	}{
		{"0x1F", 16, false, false},
		{"0B101", 2, false, false},
		{"-1.5", 10, true, true},
		{"-12", 10, true, false},
		{".25", 10, false, true},
		{"1_000", 10, false, false},
	}
	for _, test := range tests {
		line := "ADD rg0, " + test.operand
		c := analysis.Classify(line, len(line), nil)
		if c.Kind != analysis.KindNumericLiteral {
			t.Errorf("Expected %s to be a numeric literal, got %s", test.operand, c.Kind)
			continue
		}
		if c.Base != test.base || c.Negative != test.negative || c.Float != test.float {
			t.Errorf("Unexpected flags for %s: base %d negative %v float %v", test.operand, c.Base, c.Negative, c.Float)
		}
	}
}

func TestClassifySymbols(t *testing.T) {
	snap := &analysis.Snapshot{Macros: []string{"myMacro"}}
	tests := []struct {
		line   string
		offset int
		kind   analysis.Kind
		name   string
	}{
		{"ADD rg0, @!CURRENT_ADDRESS", 12, analysis.KindAssemblerConstant, "CURRENT_ADDRESS"},
		{"ADD rg0, @count", 11, analysis.KindAssemblerVariable, "count"},
		{"%IMP #file_path", 7, analysis.KindPredefinedMacro, "FILE_PATH"},
		{"%IMP #NOT_A_MACRO", 7, analysis.KindInvalid, "#NOT_A_MACRO"},
		{"%MACRO x, $1!", 11, analysis.KindMacroParameter, "1!"},
		{"ADD rg0, myMacro", 11, analysis.KindMacroReference, "myMacro"},
		{"ADD rg0, mymacro", 11, analysis.KindInvalid, "mymacro"},
		{"%VAROP add, x, 5", 8, analysis.KindVariableOperation, "ADD"},
		{"%if ndef, x", 5, analysis.KindCondition, "NDEF"},
		{"%WHILE lt, @i, 5", 8, analysis.KindCondition, "LT"},
		{"%ANALYZER warning, 12, 0", 12, analysis.KindAnalyzerSeverity, "WARNING"},
		{"%DEFINE warning, 5", 10, analysis.KindInvalid, "warning"},
		{"MVQ -rg2, 5", 6, analysis.KindRegister, "rg2"},
	}
	for _, test := range tests {
		c := analysis.Classify(test.line, test.offset, snap)
		if c.Kind != test.kind || c.Name != test.name {
			t.Errorf("%q: expected %s %q, got %s %q", test.line, test.kind, test.name, c.Kind, c.Name)
		}
	}

	if c := analysis.Classify("%MACRO x, $1", 11, nil); c.Required {
		t.Errorf("Expected $1 not to be required")
	}
	if c := analysis.Classify("ADD rg0, myMacro", 11, nil); c.Kind != analysis.KindInvalid {
		t.Errorf("Expected unknown macro without a snapshot, got %s", c.Kind)
	}
}

func TestClassifyStringsAndComments(t *testing.T) {
	tests := []struct {
		line   string
		offset int
		kind   analysis.Kind
		escape byte
	}{
		{"MVQ rg0, 5 ; note", 14, analysis.KindComment, 0},
		{`%DAT "hello"`, 8, analysis.KindString, 0},
		{`%DAT "a\nb"`, 7, analysis.KindEscapeSequence, 'n'},
		{`%DAT "a\nb"`, 8, analysis.KindEscapeSequence, 'n'},
		{`%DAT "a\\b"`, 9, analysis.KindString, 0},
		{`%DAT "a;b" ; c`, 13, analysis.KindComment, 0},
		{"  ! ; disabled", 8, analysis.KindComment, 0},
		{`%DAT "a\"b"`, 10, analysis.KindString, 0},
	}
	for _, test := range tests {
		c := analysis.Classify(test.line, test.offset, nil)
		if c.Kind != test.kind {
			t.Errorf("%q at %d: expected %s, got %s", test.line, test.offset, test.kind, c.Kind)
			continue
		}
		if c.Escape != test.escape {
			t.Errorf("%q at %d: expected escape %q, got %q", test.line, test.offset, test.escape, c.Escape)
		}
	}

	c := analysis.Classify(`%DAT "\u`+"00e9\"", 6, nil)
	if c.Kind != analysis.KindEscapeSequence || c.Start != 6 || c.End != 12 {
		t.Errorf("Expected \\u escape spanning 6..12, got %s %d..%d", c.Kind, c.Start, c.End)
	}

	c = analysis.Classify(`%DAT "a;b" ; c`, 13, nil)
	if c.Start != 11 {
		t.Errorf("Expected comment to start at 11, got %d", c.Start)
	}
}

func TestClassifyWhitespace(t *testing.T) {
	tests := []struct {
		line   string
		offset int
	}{
		{"", 0},
		{"    ", 2},
		{"    MVQ rg0, 5", 1},
		{"MVQ rg0,  rg1", 9},
		{"HLT    ", 6},
	}
	for _, test := range tests {
		if c := analysis.Classify(test.line, test.offset, nil); c.Kind != analysis.KindNone {
			t.Errorf("%q at %d: expected no classification, got %s", test.line, test.offset, c.Kind)
		}
	}
}

func TestClassifyIsRepeatable(t *testing.T) {
	snap := &analysis.Snapshot{
		Labels: map[string]uint64{"loop": 0x20},
		Macros: []string{"twice"},
	}
	lines := []string{
		"MVQ rg0, :loop",
		"*rg1[4]",
		"twice rg0",
		`%DAT "x\ty"`,
		"%VAROP BIT_AND, n, 3",
	}
	for _, line := range lines {
		for offset := 0; offset <= len(line); offset++ {
			first := analysis.Classify(line, offset, snap)
			second := analysis.Classify(line, offset, snap)
			if first != second {
				t.Errorf("%q at %d: classification changed between calls: %v then %v", line, offset, first, second)
			}
			analysis.Hover(line, offset, snap)
		}
	}
	if addr, ok := snap.Label("loop"); !ok || addr != 0x20 || len(snap.Labels) != 1 {
		t.Errorf("Snapshot was modified: %v", snap.Labels)
	}
}

func validateClassification(t *testing.T, got, expected analysis.Classification) {
	t.Helper()
	if got.Kind != expected.Kind {
		t.Fatalf("Expected kind %s, got %s", expected.Kind, got.Kind)
	}
	if got.Name != expected.Name {
		t.Errorf("Expected name \"%s\", got \"%s\"", expected.Name, got.Name)
	}
	if got.Start != expected.Start || got.End != expected.End {
		t.Errorf("Expected range %d..%d, got %d..%d", expected.Start, expected.End, got.Start, got.End)
	}
	if got.Pointer != expected.Pointer {
		t.Errorf("Expected pointer %v, got %v", expected.Pointer, got.Pointer)
	}
	if got.Displacement != expected.Displacement {
		t.Errorf("Expected displacement %v, got %v", expected.Displacement, got.Displacement)
	}
	if got.AddressLiteral != expected.AddressLiteral {
		t.Errorf("Expected address literal %v, got %v", expected.AddressLiteral, got.AddressLiteral)
	}
	if got.AddressOf != expected.AddressOf {
		t.Errorf("Expected address-of %v, got %v", expected.AddressOf, got.AddressOf)
	}
}
