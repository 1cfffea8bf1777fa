package mips

// Syntax selects how an operation's operands are written in assembler text.
type Syntax int

const (
	SYNTAX_NONE        = Syntax(0)  // nop-like, no operands
	SYNTAX_RD_RS_RT    = Syntax(1)  // add rd, rs, rt
	SYNTAX_RD_RT_SHAMT = Syntax(2)  // sll rd, rt, shamt
	SYNTAX_RD_RT_RS    = Syntax(3)  // sllv rd, rt, rs
	SYNTAX_RS_RT       = Syntax(4)  // mult rs, rt
	SYNTAX_RS          = Syntax(5)  // jr rs
	SYNTAX_RD_RS       = Syntax(6)  // jalr rd, rs
	SYNTAX_RD          = Syntax(7)  // mfhi rd
	SYNTAX_CODE        = Syntax(8)  // syscall code
	SYNTAX_RT_RS_SIMM  = Syntax(9)  // addi rt, rs, simm
	SYNTAX_RT_RS_UIMM  = Syntax(10) // andi rt, rs, uimm
	SYNTAX_RT_UIMM     = Syntax(11) // lui rt, uimm
	SYNTAX_RS_RT_OFF   = Syntax(12) // beq rs, rt, offset
	SYNTAX_RS_OFF      = Syntax(13) // blez rs, offset
	SYNTAX_RT_MEM      = Syntax(14) // lw rt, offset(rs)
	SYNTAX_TARGET      = Syntax(15) // j target
)

// Operation describes one known operation. Operations are static data,
// shared by pointer from their Catalog and never modified.
type Operation struct {
	Mnemonic    string // Assembler mnemonic.
	Description string // Human readable description.
	Layout      Layout // Word layout.
	Primary     uint8  // Primary code, bits 26-31.
	Secondary   uint8  // Secondary code, bits 0-5. Only for LAYOUT_REGISTER.
	Syntax      Syntax // Operand syntax.
}

// Key is the catalog lookup key of an operation.
type Key struct {
	Primary   uint8
	Secondary uint8
}

// Key returns the catalog key of the operation.
func (op *Operation) Key() Key {
	return Key{Primary: op.Primary, Secondary: op.secondary()}
}

func (op *Operation) secondary() uint8 {
	if op.Layout != LAYOUT_REGISTER {
		return 0
	}
	return op.Secondary
}

// KeyOf returns the catalog key of a word decoded with the given layout.
func KeyOf(w Word, layout Layout) (key Key) {
	key.Primary = w.Primary()
	if layout == LAYOUT_REGISTER {
		key.Secondary = w.Funct()
	}

	return
}

// String returns the mnemonic.
func (op *Operation) String() string {
	return op.Mnemonic
}
