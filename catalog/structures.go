package catalog

type OperandKind int

const (
	OperandRegister OperandKind = iota
	OperandLiteral
	OperandAddress
	OperandPointer
	OperandString
	OperandSpecial
	OperandOptional
)

var operandKindNames = [...]string{
	OperandRegister: "Register",
	OperandLiteral:  "Literal",
	OperandAddress:  "Address",
	OperandPointer:  "Pointer",
	OperandString:   "String",
	OperandSpecial:  "Special",
	OperandOptional: "Optional",
}

func (k OperandKind) String() string {
	if k < 0 || int(k) >= len(operandKindNames) {
		return "Unknown"
	}
	return operandKindNames[k]
}

// Entry is either a Mnemonic or a Register.
type Entry interface {
	entryName() string
}

type Mnemonic struct {
	Name string
	// one element per operand position, each listing the kinds accepted there.
	// OperandOptional may only be the last kind of a position.
	OperandCombinations [][]OperandKind
	ExtensionSet        string
	Description         string
}

func (m Mnemonic) entryName() string { return m.Name }

// IsDirective reports whether the mnemonic is an assembler directive (%NAME).
func (m Mnemonic) IsDirective() bool {
	return len(m.Name) > 0 && m.Name[0] == '%'
}

type Register struct {
	Name        string
	Description string
}

func (r Register) entryName() string { return r.Name }

// operand position presets shared by the mnemonic table
var (
	allOperands                 = []OperandKind{OperandRegister, OperandLiteral, OperandAddress, OperandPointer}
	allOperandsOptional         = []OperandKind{OperandRegister, OperandLiteral, OperandAddress, OperandPointer, OperandOptional}
	memLocationOperands         = []OperandKind{OperandAddress, OperandPointer}
	memLocationOperandsOptional = []OperandKind{OperandAddress, OperandPointer, OperandOptional}
	writableOperands            = []OperandKind{OperandRegister, OperandAddress, OperandPointer}
	registerOperands            = []OperandKind{OperandRegister}
	registerOperandsOptional    = []OperandKind{OperandRegister, OperandOptional}
	literalOperands             = []OperandKind{OperandLiteral}
	literalOperandsOptional     = []OperandKind{OperandLiteral, OperandOptional}
	literalOrStringOperands     = []OperandKind{OperandLiteral, OperandString}
	registerOrLiteralOperands   = []OperandKind{OperandRegister, OperandLiteral}
	pointerOperands             = []OperandKind{OperandPointer}
	stringOperands              = []OperandKind{OperandString}
	stringOperandsOptional      = []OperandKind{OperandString, OperandOptional}
	specialOperands             = []OperandKind{OperandSpecial}
	specialOperandsOptional     = []OperandKind{OperandSpecial, OperandOptional}
	specialLiteralOperands      = []OperandKind{OperandSpecial, OperandLiteral}
)

func operands(positions ...[]OperandKind) [][]OperandKind {
	return positions
}
