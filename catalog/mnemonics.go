package catalog

const (
	setBase             = "Base Instruction Set"
	setSigned           = "Signed Extension Set"
	setFloatingPoint    = "Floating Point Extension Set"
	setExtendedBase     = "Extended Base Set"
	setExternalAssembly = "External Assembly Extension Set"
	setHeap             = "Memory Allocation Extension Set"
	setFileSystem       = "File System Extension Set"
	setTerminal         = "Terminal Extension Set"
	setDirectives       = "Assembler Directives"
)

const moveNote = "\n\n*Note: If the destination operand is an address or pointer, the source must be a register or literal*"

type mnemonicRow struct {
	name        string
	set         string
	description string
	positions   [][]OperandKind
}

var mnemonicTable = []mnemonicRow{
	// base instruction set
	{"HLT", setBase, "## Halt", operands()},
	{"NOP", setBase, "## No Operation", operands()},
	{"JMP", setBase, "## Jump Unconditionally", operands(memLocationOperands)},
	{"JEQ", setBase, "## Jump If Equal To", operands(memLocationOperands)},
	{"JZO", setBase, "## Jump If Zero", operands(memLocationOperands)},
	{"JNE", setBase, "## Jump If Not Equal", operands(memLocationOperands)},
	{"JNZ", setBase, "## Jump If Not Zero", operands(memLocationOperands)},
	{"JLT", setBase, "## Jump If Less Than", operands(memLocationOperands)},
	{"JCA", setBase, "## Jump If Carry", operands(memLocationOperands)},
	{"JLE", setBase, "## Jump If Less Than or Equal To", operands(memLocationOperands)},
	{"JGT", setBase, "## Jump If Greater Than", operands(memLocationOperands)},
	{"JGE", setBase, "## Jump If Greater Than or Equal To", operands(memLocationOperands)},
	{"JNC", setBase, "## Jump If Not Carry", operands(memLocationOperands)},
	{"ADD", setBase, "## Add", operands(registerOperands, allOperands)},
	{"ICR", setBase, "## Increment", operands(registerOperands)},
	{"SUB", setBase, "## Subtract", operands(registerOperands, allOperands)},
	{"DCR", setBase, "## Decrement", operands(registerOperands)},
	{"MUL", setBase, "## Multiply", operands(registerOperands, allOperands)},
	{"DIV", setBase, "## Divide (Ignore Remainder)", operands(registerOperands, allOperands)},
	{"DVR", setBase, "## Divide (With Remainder)", operands(registerOperands, registerOperands, allOperands)},
	{"REM", setBase, "## Remainder", operands(registerOperands, allOperands)},
	{"SHL", setBase, "## Shift Left", operands(registerOperands, allOperands)},
	{"SHR", setBase, "## Shift Right", operands(registerOperands, allOperands)},
	{"AND", setBase, "## Bitwise And", operands(registerOperands, allOperands)},
	{"ORR", setBase, "## Bitwise Or", operands(registerOperands, allOperands)},
	{"XOR", setBase, "## Bitwise Exclusive Or", operands(registerOperands, allOperands)},
	{"NOT", setBase, "## Bitwise Not", operands(registerOperands)},
	{"RNG", setBase, "## Random Number", operands(registerOperands)},
	{"TST", setBase, "## Test (Discarded Bitwise And)", operands(registerOperands, allOperands)},
	{"CMP", setBase, "## Compare (Discarded Subtraction)", operands(registerOperands, allOperands)},
	{"MVB", setBase, "## Move Byte (8-bits)" + moveNote, operands(writableOperands, allOperands)},
	{"MVW", setBase, "## Move Word (16-bits, 2 bytes)" + moveNote, operands(writableOperands, allOperands)},
	{"MVD", setBase, "## Move Double Word (32-bits, 4 bytes)" + moveNote, operands(writableOperands, allOperands)},
	{"MVQ", setBase, "## Move Quad Word (64-bits, 8 bytes)" + moveNote, operands(writableOperands, allOperands)},
	{"PSH", setBase, "## Push to Stack", operands(allOperands)},
	{"POP", setBase, "## Pop from Stack", operands(registerOperands)},
	{"CAL", setBase, "## Call Subroutine", operands(memLocationOperands, allOperandsOptional)},
	{"RET", setBase, "## Return from Subroutine", operands(allOperandsOptional)},
	{"WCN", setBase, "## Write Number (64-bit) to Console", operands(allOperands)},
	{"WCB", setBase, "## Write Numeric Byte to Console", operands(allOperands)},
	{"WCX", setBase, "## Write Byte to Console as Hexadecimal", operands(allOperands)},
	{"WCC", setBase, "## Write Raw Byte to Console", operands(allOperands)},
	{"WFN", setBase, "## Write Number (64-bit) to File", operands(allOperands)},
	{"WFB", setBase, "## Write Numeric Byte to File", operands(allOperands)},
	{"WFX", setBase, "## Write Byte to File as Hexadecimal", operands(allOperands)},
	{"WFC", setBase, "## Write Raw Byte to File", operands(allOperands)},
	{"OFL", setBase, "## Open File", operands(memLocationOperands)},
	{"CFL", setBase, "## Close File", operands()},
	{"DFL", setBase, "## Delete File", operands(memLocationOperands)},
	{"FEX", setBase, "## File Exists?", operands(registerOperands, memLocationOperands)},
	{"FSZ", setBase, "## Get File Size", operands(registerOperands, memLocationOperands)},
	{"RCC", setBase, "## Read Raw Byte from Console", operands(registerOperands)},
	{"RFC", setBase, "## Read Raw Byte from File", operands(registerOperands)},

	// signed instruction set
	{"SIGN_JLT", setSigned, "## Jump If Less Than", operands(memLocationOperands)},
	{"SIGN_JLE", setSigned, "## Jump If Less Than or Equal To", operands(memLocationOperands)},
	{"SIGN_JGT", setSigned, "## Jump If Greater Than", operands(memLocationOperands)},
	{"SIGN_JGE", setSigned, "## Jump If Greater Than or Equal To", operands(memLocationOperands)},
	{"SIGN_JSI", setSigned, "## Jump If Sign Flag Set", operands(memLocationOperands)},
	{"SIGN_JNS", setSigned, "## Jump If Sign Flag Unset", operands(memLocationOperands)},
	{"SIGN_JOV", setSigned, "## Jump If Overflow Flag Set", operands(memLocationOperands)},
	{"SIGN_JNO", setSigned, "## Jump If Overflow Flag Unset", operands(memLocationOperands)},
	{"SIGN_DIV", setSigned, "## Divide (Ignore Remainder)", operands(registerOperands, allOperands)},
	{"SIGN_DVR", setSigned, "## Divide (With Remainder)", operands(registerOperands, registerOperands, allOperands)},
	{"SIGN_REM", setSigned, "## Remainder", operands(registerOperands, allOperands)},
	{"SIGN_SHR", setSigned, "## Arithmetic Shift Right", operands(registerOperands, allOperands)},
	{"SIGN_MVB", setSigned, "## Move Byte (8-bits) and Extend Sign to 64-bits" + moveNote, operands(registerOperands, allOperands)},
	{"SIGN_MVW", setSigned, "## Move Word (16-bits, 2 bytes) and Extend Sign to 64-bits" + moveNote, operands(registerOperands, allOperands)},
	{"SIGN_MVD", setSigned, "## Move Double Word (32-bits, 4 bytes) and Extend Sign to 64-bits" + moveNote, operands(registerOperands, allOperands)},
	{"SIGN_WCN", setSigned, "## Write Number (64-bit) to Console", operands(allOperands)},
	{"SIGN_WCB", setSigned, "## Write Numeric Byte to Console", operands(allOperands)},
	{"SIGN_WFN", setSigned, "## Write Number (64-bit) to File", operands(allOperands)},
	{"SIGN_WFB", setSigned, "## Write Numeric Byte to File", operands(allOperands)},
	{"SIGN_EXB", setSigned, "## Extend Signed Byte (8-bits) to Signed Quad Word (64-bits, 8 bytes)", operands(registerOperands)},
	{"SIGN_EXW", setSigned, "## Extend Signed Word (16-bits, 2 bytes) to Signed Quad Word (64-bits, 8 bytes)", operands(registerOperands)},
	{"SIGN_EXD", setSigned, "## Extend Signed Double Word (32-bits, 4 bytes) to Signed Quad Word (64-bits, 8 bytes)", operands(registerOperands)},
	{"SIGN_NEG", setSigned, "## Two's Complement Negation", operands(registerOperands)},

	// floating point instruction set
	{"FLPT_ADD", setFloatingPoint, "## Add", operands(registerOperands, allOperands)},
	{"FLPT_SUB", setFloatingPoint, "## Subtract", operands(registerOperands, allOperands)},
	{"FLPT_MUL", setFloatingPoint, "## Multiply", operands(registerOperands, allOperands)},
	{"FLPT_DIV", setFloatingPoint, "## Divide (Ignore Remainder)", operands(registerOperands, allOperands)},
	{"FLPT_DVR", setFloatingPoint, "## Divide (With Remainder)", operands(registerOperands, registerOperands, allOperands)},
	{"FLPT_REM", setFloatingPoint, "## Remainder", operands(registerOperands, allOperands)},
	{"FLPT_SIN", setFloatingPoint, "## Sine", operands(registerOperands)},
	{"FLPT_ASN", setFloatingPoint, "## Inverse Sine", operands(registerOperands)},
	{"FLPT_COS", setFloatingPoint, "## Cosine", operands(registerOperands)},
	{"FLPT_ACS", setFloatingPoint, "## Inverse Cosine", operands(registerOperands)},
	{"FLPT_TAN", setFloatingPoint, "## Tangent", operands(registerOperands)},
	{"FLPT_ATN", setFloatingPoint, "## Inverse Tangent", operands(registerOperands)},
	{"FLPT_PTN", setFloatingPoint, "## 2 Argument Inverse Tangent", operands(registerOperands, allOperands)},
	{"FLPT_POW", setFloatingPoint, "## Exponentiation", operands(registerOperands, allOperands)},
	{"FLPT_LOG", setFloatingPoint, "## Logarithm", operands(registerOperands, allOperands)},
	{"FLPT_WCN", setFloatingPoint, "## Write Number (64-bit) to Console", operands(allOperands)},
	{"FLPT_WFN", setFloatingPoint, "## Write Number (64-bit) to File", operands(allOperands)},
	{"FLPT_EXH", setFloatingPoint, "## Extend Half Precision Float (16-bits, 2 bytes) to Double Precision Float (64-bits, 8 bytes)", operands(registerOperands)},
	{"FLPT_EXS", setFloatingPoint, "## Extend Single Precision Float (32-bits, 4 bytes) to Double Precision Float (64-bits, 8 bytes)", operands(registerOperands)},
	{"FLPT_SHS", setFloatingPoint, "## Shrink Double Precision Float (64-bits, 8 bytes) to Single Precision Float (32-bits, 4 bytes)", operands(registerOperands)},
	{"FLPT_SHH", setFloatingPoint, "## Shrink Double Precision Float (64-bits, 8 bytes) to Half Precision Float (16-bits, 2 bytes)", operands(registerOperands)},
	{"FLPT_NEG", setFloatingPoint, "## Negate", operands(registerOperands)},
	{"FLPT_UTF", setFloatingPoint, "## Convert Unsigned Quad Word (64-bits, 8 bytes) to Double Precision Float (64-bits, 8 bytes)", operands(registerOperands)},
	{"FLPT_STF", setFloatingPoint, "## Convert Signed Quad Word (64-bits, 8 bytes) to Double Precision Float (64-bits, 8 bytes)", operands(registerOperands)},
	{"FLPT_FTS", setFloatingPoint, "## Convert Double Precision Float (64-bits, 8 bytes) to Signed Quad Word (64-bits, 8 bytes) through Truncation", operands(registerOperands)},
	{"FLPT_FCS", setFloatingPoint, "## Convert Double Precision Float (64-bits, 8 bytes) to Signed Quad Word (64-bits, 8 bytes) through Ceiling Rounding", operands(registerOperands)},
	{"FLPT_FFS", setFloatingPoint, "## Convert Double Precision Float (64-bits, 8 bytes) to Signed Quad Word (64-bits, 8 bytes) through Floor Rounding", operands(registerOperands)},
	{"FLPT_FNS", setFloatingPoint, "## Convert Double Precision Float (64-bits, 8 bytes) to Signed Quad Word (64-bits, 8 bytes) through Nearest Rounding", operands(registerOperands)},
	{"FLPT_CMP", setFloatingPoint, "## Compare (Discarded Subtraction)", operands(registerOperands, allOperands)},

	// extended base set
	{"EXTD_BSW", setExtendedBase, "## Reverse Byte Order", operands(registerOperands)},
	{"EXTD_QPF", setExtendedBase, "## Query Present Features", operands(registerOperands)},
	{"EXTD_QPV", setExtendedBase, "## Query Present Version", operands(registerOperands, registerOperandsOptional)},
	{"EXTD_CSS", setExtendedBase, "## Query Call Stack Size", operands(registerOperands, registerOperandsOptional)},
	{"EXTD_HLT", setExtendedBase, "## Halt With Exit Code", operands(allOperands)},
	{"EXTD_MPA", setExtendedBase, "## Move Pointer Address", operands(writableOperands, pointerOperands)},
	{"EXTD_SLP", setExtendedBase, "## Sleep", operands(allOperands)},

	// external assembly extension set
	{"ASMX_LDA", setExternalAssembly, "## Load External Assembly", operands(memLocationOperands)},
	{"ASMX_LDF", setExternalAssembly, "## Load External Function", operands(memLocationOperands)},
	{"ASMX_CLA", setExternalAssembly, "## Close External Assembly", operands()},
	{"ASMX_CLF", setExternalAssembly, "## Close External Function", operands()},
	{"ASMX_AEX", setExternalAssembly, "## External Assembly Valid?", operands(registerOperands, memLocationOperands)},
	{"ASMX_FEX", setExternalAssembly, "## External Function Valid?", operands(registerOperands, memLocationOperands)},
	{"ASMX_CAL", setExternalAssembly, "## Call External Function", operands(allOperandsOptional)},

	// memory allocation extension set
	{"HEAP_ALC", setHeap, "## Allocate Memory\n\n*Throw error upon failure*", operands(registerOperands, allOperands)},
	{"HEAP_TRY", setHeap, "## Try Allocate Memory\n\n*Return error code upon failure*", operands(registerOperands, allOperands)},
	{"HEAP_REA", setHeap, "## Re-allocate Memory\n\n*Throw error upon failure*", operands(registerOperands, allOperands)},
	{"HEAP_TRE", setHeap, "## Try Re-allocate Memory\n\n*Return error code upon failure*", operands(registerOperands, allOperands)},
	{"HEAP_FRE", setHeap, "## Free Memory", operands(registerOperands)},

	// file system extension set
	{"FSYS_CWD", setFileSystem, "## Change Working Directory", operands(memLocationOperands)},
	{"FSYS_GWD", setFileSystem, "## Get Working Directory", operands(memLocationOperands)},
	{"FSYS_CDR", setFileSystem, "## Create Directory", operands(memLocationOperands)},
	{"FSYS_DDR", setFileSystem, "## Delete Directory Recursively", operands(memLocationOperands)},
	{"FSYS_DDE", setFileSystem, "## Delete Empty Directory", operands(memLocationOperands)},
	{"FSYS_DEX", setFileSystem, "## Directory Exists?", operands(registerOperands, memLocationOperands)},
	{"FSYS_CPY", setFileSystem, "## Copy File", operands(memLocationOperands, memLocationOperands)},
	{"FSYS_MOV", setFileSystem, "## Move File", operands(memLocationOperands, memLocationOperands)},
	{"FSYS_BDL", setFileSystem, "## Begin Directory Listing", operands(memLocationOperandsOptional)},
	{"FSYS_GNF", setFileSystem, "## Get Next File in Directory Listing", operands(memLocationOperands)},
	{"FSYS_GND", setFileSystem, "## Get Next Directory in Directory Listing", operands(memLocationOperands)},
	{"FSYS_GCT", setFileSystem, "## Get Creation Time", operands(registerOperands, memLocationOperands)},
	{"FSYS_GMT", setFileSystem, "## Get Modification Time", operands(registerOperands, memLocationOperands)},
	{"FSYS_GAT", setFileSystem, "## Get Access Time", operands(registerOperands, memLocationOperands)},
	{"FSYS_SCT", setFileSystem, "## Set Creation Time", operands(memLocationOperands, registerOrLiteralOperands)},
	{"FSYS_SMT", setFileSystem, "## Set Modification Time", operands(memLocationOperands, registerOrLiteralOperands)},
	{"FSYS_SAT", setFileSystem, "## Set Access Time", operands(memLocationOperands, registerOrLiteralOperands)},

	// terminal extension set
	{"TERM_CLS", setTerminal, "## Clear Screen", operands()},
	{"TERM_AEE", setTerminal, "## Auto Echo Enable", operands()},
	{"TERM_AED", setTerminal, "## Auto Echo Disable", operands()},
	{"TERM_SCY", setTerminal, "## Set Vertical Cursor Position", operands(allOperands)},
	{"TERM_SCX", setTerminal, "## Set Horizontal Cursor Position", operands(allOperands)},
	{"TERM_GCY", setTerminal, "## Get Vertical Cursor Position", operands(registerOperands)},
	{"TERM_GCX", setTerminal, "## Get Horizontal Cursor Position", operands(registerOperands)},
	{"TERM_GSY", setTerminal, "## Get Terminal Buffer Height", operands(registerOperands)},
	{"TERM_GSX", setTerminal, "## Get Terminal Buffer Width", operands(registerOperands)},
	{"TERM_BEP", setTerminal, "## Beep", operands()},
	{"TERM_SFC", setTerminal, "## Set Foreground Color", operands(allOperands)},
	{"TERM_SBC", setTerminal, "## Set Background Color", operands(allOperands)},
	{"TERM_RSC", setTerminal, "## Reset Color", operands()},

	// directives
	{"%PAD", setDirectives, "## Pad With 0s", operands(literalOperands)},
	{"%DAT", setDirectives, "## Insert Raw Byte or String", operands(literalOrStringOperands)},
	{"%NUM", setDirectives, "## Insert Raw Quad Word (64-bits, 8 bytes)", operands(literalOperands)},
	{"%IMP", setDirectives, "## Import AssEmbly Source", operands(stringOperands)},
	{"%MACRO", setDirectives, "## Define Macro\n\n*Give 2 operands to define a single-line macro, or 1 operand to define a multi-line macro.*\n\n*Note: Macro operands can be any arbitrary text, they do not have to be of a defined operand type*", operands(specialOperands, specialOperandsOptional)},
	{"%ENDMACRO", setDirectives, "## End Multi-line Macro Definition", operands()},
	{"%DELMACRO", setDirectives, "## Remove Macro\n\n*Note: Macro operands can be any arbitrary text, they do not have to be of a defined operand type*", operands(specialOperands)},
	{"%ANALYZER", setDirectives, "## Toggle Assembler Warning\n\nFirst operand is one of `error`, `warning`, or `suggestion`.\n\nSecond operand is the numerical code of the message\n\nThe third operand is one of `0`, `1`, or `r`.", operands(specialOperands, specialOperands, specialOperands)},
	{"%MESSAGE", setDirectives, "## Manually Emit Assembler Message\n\nFirst operand is one of `error`, `warning`, or `suggestion`.", operands(specialOperands, stringOperandsOptional)},
	{"%IBF", setDirectives, "## Import Binary File Contents", operands(stringOperands)},
	{"%DEBUG", setDirectives, "## Output Assembler State", operands()},
	{"%LABEL_OVERRIDE", setDirectives, "## Manually Define Label Address", operands(literalOperands)},
	{"%STOP", setDirectives, "## Stop Assembly", operands(stringOperandsOptional)},
	{"%REPEAT", setDirectives, "## Repeat Block of Lines", operands(literalOperands)},
	{"%ENDREPEAT", setDirectives, "## End Repeat Block", operands()},
	{"%ASM_ONCE", setDirectives, "## Only Assemble File Once", operands()},
	{"%DEFINE", setDirectives, "## Define Assembler Variable\n\nFirst operand is the name of the variable to define without the '@' prefix.", operands(specialOperands, literalOperands)},
	{"%UNDEFINE", setDirectives, "## Remove Assembler Variable\n\nFirst operand is the name of the variable to remove without the '@' prefix.", operands(specialOperands)},
	{"%VAROP", setDirectives, "## Assembler Variable Operation\n\nFirst operand is one of `ADD`, `SUB`, `MUL`, `DIV`, `REM`, `BIT_AND`, `BIT_OR`, `BIT_XOR`, `BIT_NOT`, `AND`, `OR`, `XOR`, `NOT`, `SHL`, `SHR`, `CMP_EQ`, `CMP_NEQ`, `CMP_GT`, `CMP_GTE`, `CMP_LT`, or `CMP_LTE`.\n\nSecond operand is the name of the variable to operate on without the '@' prefix.", operands(specialOperands, specialOperands, literalOperands)},
	{"%IF", setDirectives, "## Conditional Assembly If Block\n\nFirst operand is one of `DEF`, `NDEF`, `EQ`, `NEQ`, `GT`, `GTE`, `LT`, or `LTE`.\n\nSecond operand is the name of the variable to check without the '@' prefix for the `DEF` and `NDEF` operations, or a literal to compare with the third operand for the other operations.\n\nThird operand should not be given for the `DEF` and `NDEF` operations.", operands(specialOperands, specialLiteralOperands, literalOperandsOptional)},
	{"%ELSE", setDirectives, "## Conditional Assembly Else Block", operands()},
	{"%ELSE_IF", setDirectives, "## Conditional Assembly Else If Block\n\nFirst operand is one of `DEF`, `NDEF`, `EQ`, `NEQ`, `GT`, `GTE`, `LT`, or `LTE`.\n\nSecond operand is the name of the variable to check without the '@' prefix for the `DEF` and `NDEF` operations, or a literal to compare with the third operand for the other operations.\n\nThird operand should not be given for the `DEF` and `NDEF` operations.", operands(specialOperands, specialLiteralOperands, literalOperandsOptional)},
	{"%ENDIF", setDirectives, "## End Conditional Assembly Block", operands()},
	{"%WHILE", setDirectives, "## Conditionally Repeat Block of Lines\n\nFirst operand is one of `DEF`, `NDEF`, `EQ`, `NEQ`, `GT`, `GTE`, `LT`, or `LTE`.\n\nSecond operand is the name of the variable to check without the '@' prefix for the `DEF` and `NDEF` operations, or a literal to compare with the third operand for the other operations.\n\nThird operand should not be given for the `DEF` and `NDEF` operations.", operands(specialOperands, specialLiteralOperands, literalOperandsOptional)},
	{"%ENDWHILE", setDirectives, "## End While Block", operands()},
}
