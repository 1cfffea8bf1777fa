package mips

import (
	"fmt"
)

// Word is a raw 32-bit instruction word, already converted to host order.
type Word uint32

// Bit positions of the instruction fields.
const (
	PRIMARY_SHIFT = 26
	RS_SHIFT      = 21
	RT_SHIFT      = 16
	RD_SHIFT      = 11
	SHAMT_SHIFT   = 6
	FUNCT_SHIFT   = 0
	CODE_SHIFT    = 6
)

// Field masks, applied after shifting.
const (
	PRIMARY_MASK   = 0x3f
	REGISTER_MASK  = 0x1f
	SHAMT_MASK     = 0x1f
	FUNCT_MASK     = 0x3f
	IMMEDIATE_MASK = 0xffff
	TARGET_MASK    = 0x3ffffff
	CODE_MASK      = 0xfffff
)

// Primary returns the primary code from bits 26-31.
func (w Word) Primary() uint8 {
	return uint8((uint32(w) >> PRIMARY_SHIFT) & PRIMARY_MASK)
}

// Rs returns the source register from bits 21-25.
func (w Word) Rs() Register {
	return Register((uint32(w) >> RS_SHIFT) & REGISTER_MASK)
}

// Rt returns the target register from bits 16-20.
func (w Word) Rt() Register {
	return Register((uint32(w) >> RT_SHIFT) & REGISTER_MASK)
}

// Rd returns the destination register from bits 11-15.
func (w Word) Rd() Register {
	return Register((uint32(w) >> RD_SHIFT) & REGISTER_MASK)
}

// Shamt returns the shift amount from bits 6-10.
func (w Word) Shamt() uint8 {
	return uint8((uint32(w) >> SHAMT_SHIFT) & SHAMT_MASK)
}

// Funct returns the secondary code from bits 0-5.
func (w Word) Funct() uint8 {
	return uint8((uint32(w) >> FUNCT_SHIFT) & FUNCT_MASK)
}

// Immediate returns bits 0-15, without sign extension.
func (w Word) Immediate() uint16 {
	return uint16(uint32(w) & IMMEDIATE_MASK)
}

// Target returns the jump target field from bits 0-25.
func (w Word) Target() uint32 {
	return uint32(w) & TARGET_MASK
}

// RegisterDecode decodes the operand fields of a register form word.
func (w Word) RegisterDecode() (rs, rt, rd Register, shamt, funct uint8) {
	rs = w.Rs()
	rt = w.Rt()
	rd = w.Rd()
	shamt = w.Shamt()
	funct = w.Funct()
	return
}

// ImmediateDecode decodes the operand fields of an immediate form word.
func (w Word) ImmediateDecode() (rs, rt Register, imm uint16) {
	rs = w.Rs()
	rt = w.Rt()
	imm = w.Immediate()
	return
}

// JumpDecode decodes the operand field of a jump form word.
func (w Word) JumpDecode() (target uint32) {
	target = w.Target()
	return
}

// String returns the word as fixed width hex.
func (w Word) String() string {
	return fmt.Sprintf("%08x", uint32(w))
}

// MakeWordRegister creates a register form word. Primary is always PRIMARY_SPECIAL.
func MakeWordRegister(rs, rt, rd Register, shamt, funct uint8) Word {
	return Word((uint32(PRIMARY_SPECIAL) << PRIMARY_SHIFT) |
		((uint32(rs) & REGISTER_MASK) << RS_SHIFT) |
		((uint32(rt) & REGISTER_MASK) << RT_SHIFT) |
		((uint32(rd) & REGISTER_MASK) << RD_SHIFT) |
		((uint32(shamt) & SHAMT_MASK) << SHAMT_SHIFT) |
		((uint32(funct) & FUNCT_MASK) << FUNCT_SHIFT))
}

// MakeWordImmediate creates an immediate form word.
func MakeWordImmediate(primary uint8, rs, rt Register, imm uint16) Word {
	return Word(((uint32(primary) & PRIMARY_MASK) << PRIMARY_SHIFT) |
		((uint32(rs) & REGISTER_MASK) << RS_SHIFT) |
		((uint32(rt) & REGISTER_MASK) << RT_SHIFT) |
		uint32(imm))
}

// MakeWordJump creates a jump form word.
func MakeWordJump(primary uint8, target uint32) Word {
	return Word(((uint32(primary) & PRIMARY_MASK) << PRIMARY_SHIFT) |
		(target & TARGET_MASK))
}
