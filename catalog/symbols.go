package catalog

var registerTable = []Register{
	{"rpo", "Program Offset"},
	{"rso", "Stack Offset"},
	{"rsb", "Stack Base"},
	{"rsf", "Status Flags\n\n*(Zero Flag, Carry Flag, File End Flag, Sign Flag, Overflow Flag, Auto Echo Flag, 58 remaining high bits undefined)*"},
	{"rrv", "Return Value"},
	{"rfp", "Fast Pass Parameter"},
	{"rg0", "General 0"},
	{"rg1", "General 1"},
	{"rg2", "General 2"},
	{"rg3", "General 3"},
	{"rg4", "General 4"},
	{"rg5", "General 5"},
	{"rg6", "General 6"},
	{"rg7", "General 7"},
	{"rg8", "General 8"},
	{"rg9", "General 9"},
}

// AssemblerConstants are referenced as @!NAME.
var AssemblerConstants = []string{
	"ASSEMBLER_VERSION_MAJOR",
	"ASSEMBLER_VERSION_MINOR",
	"ASSEMBLER_VERSION_PATCH",
	"V1_FORMAT",
	"V1_CALL_STACK",
	"IMPORT_DEPTH",
	"CURRENT_ADDRESS",
	"FULL_BASE_OPCODES",
	"OBSOLETE_DIRECTIVES",
	"ESCAPE_SEQUENCES",
	"FILE_PATH_MACROS",
	"EXTENSION_SET_SIGNED_AVAIL",
	"EXTENSION_SET_FLOATING_POINT_AVAIL",
	"EXTENSION_SET_EXTENDED_BASE_AVAIL",
	"EXTENSION_SET_EXTERNAL_ASM_AVAIL",
	"EXTENSION_SET_HEAP_ALLOCATE_AVAIL",
	"EXTENSION_SET_FILE_SYSTEM_AVAIL",
	"EXTENSION_SET_TERMINAL_AVAIL",
	"DISPLACEMENT_AVAIL",
}

// PredefinedMacros are referenced as #NAME.
var PredefinedMacros = []string{
	"FILE_PATH",
	"FILE_NAME",
	"FOLDER_PATH",
}

type EscapeSequence struct {
	Char        byte
	Description string
	// number of hex digits that follow, 0 for single character escapes
	HexDigits int
}

var EscapeSequences = []EscapeSequence{
	{'"', "Double quote", 0},
	{'\'', "Single quote", 0},
	{'\\', "Backslash", 0},
	{'@', "At sign", 0},
	{'0', "Null", 0},
	{'a', "Alert", 0},
	{'b', "Backspace", 0},
	{'f', "Form feed", 0},
	{'n', "Newline", 0},
	{'r', "Carriage return", 0},
	{'t', "Horizontal tab", 0},
	{'v', "Vertical tab", 0},
	{'u', "Unicode codepoint (16-bit)", 4},
	{'U', "Unicode codepoint (32-bit)", 8},
}

// AnalyzerSeverities are the first operand of %ANALYZER.
var AnalyzerSeverities = []string{
	"ERROR", "WARNING", "SUGGESTION",
}

// Keyword is a fixed operand of a directive with its description.
type Keyword struct {
	Name        string
	Description string
}

// VariableOperations are the first operand of %VAROP.
var VariableOperations = []Keyword{
	{"ADD", "Add"},
	{"SUB", "Subtract"},
	{"MUL", "Multiply"},
	{"DIV", "Divide"},
	{"REM", "Remainder"},
	{"BIT_AND", "Bitwise AND"},
	{"BIT_OR", "Bitwise OR"},
	{"BIT_XOR", "Bitwise Exclusive OR"},
	{"BIT_NOT", "Bitwise NOT"},
	{"AND", "Logical AND"},
	{"OR", "Logical OR"},
	{"XOR", "Logical Exclusive OR"},
	{"NOT", "Logical NOT"},
	{"SHL", "Shift Left"},
	{"SHR", "Shift Right"},
	{"CMP_EQ", "Compare Equal"},
	{"CMP_NEQ", "Compare Not Equal"},
	{"CMP_GT", "Compare Greater Than"},
	{"CMP_GTE", "Compare Greater Than or Equal"},
	{"CMP_LT", "Compare Less Than"},
	{"CMP_LTE", "Compare Less Than or Equal"},
}

// Conditions are the first operand of %IF, %ELSE_IF and %WHILE.
var Conditions = []Keyword{
	{"DEF", "Defined"},
	{"NDEF", "Not Defined"},
	{"EQ", "Equal"},
	{"NEQ", "Not Equal"},
	{"GT", "Greater Than"},
	{"GTE", "Greater Than or Equal"},
	{"LT", "Less Than"},
	{"LTE", "Less Than or Equal"},
}
