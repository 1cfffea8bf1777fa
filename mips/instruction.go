package mips

import (
	"fmt"
)

// Instruction is a fully decoded instruction word. Only the operand fields
// of the operation's layout are set; the others are zero.
type Instruction struct {
	Word Word
	Op   *Operation

	Rs    Register // R and I forms.
	Rt    Register // R and I forms.
	Rd    Register // R form.
	Shamt uint8    // R form.
	Funct uint8    // R form.

	Immediate uint16 // I form, as encoded.
	Target    uint32 // J form, 26 bits.
}

// Layout returns the layout of the instruction.
func (inst Instruction) Layout() Layout {
	return inst.Op.Layout
}

// Mnemonic returns the operation mnemonic.
func (inst Instruction) Mnemonic() string {
	return inst.Op.Mnemonic
}

// SignedImmediate returns the immediate sign extended from 16 bits.
func (inst Instruction) SignedImmediate() int32 {
	return int32(int16(inst.Immediate))
}

// Code returns the 20-bit code field of syscall and break.
func (inst Instruction) Code() uint32 {
	return (uint32(inst.Word) >> CODE_SHIFT) & CODE_MASK
}

func hexSigned(value int32) string {
	if value < 0 {
		return fmt.Sprintf("-0x%x", -int64(value))
	}
	return fmt.Sprintf("0x%x", value)
}

// Operands returns the assembler text of the operands.
func (inst Instruction) Operands() (text string) {
	switch inst.Op.Syntax {
	case SYNTAX_RD_RS_RT:
		text = fmt.Sprintf("%v, %v, %v", inst.Rd, inst.Rs, inst.Rt)
	case SYNTAX_RD_RT_SHAMT:
		text = fmt.Sprintf("%v, %v, %d", inst.Rd, inst.Rt, inst.Shamt)
	case SYNTAX_RD_RT_RS:
		text = fmt.Sprintf("%v, %v, %v", inst.Rd, inst.Rt, inst.Rs)
	case SYNTAX_RS_RT:
		text = fmt.Sprintf("%v, %v", inst.Rs, inst.Rt)
	case SYNTAX_RS:
		text = inst.Rs.String()
	case SYNTAX_RD_RS:
		text = fmt.Sprintf("%v, %v", inst.Rd, inst.Rs)
	case SYNTAX_RD:
		text = inst.Rd.String()
	case SYNTAX_CODE:
		text = fmt.Sprintf("0x%x", inst.Code())
	case SYNTAX_RT_RS_SIMM:
		text = fmt.Sprintf("%v, %v, %v", inst.Rt, inst.Rs, hexSigned(inst.SignedImmediate()))
	case SYNTAX_RT_RS_UIMM:
		text = fmt.Sprintf("%v, %v, 0x%x", inst.Rt, inst.Rs, inst.Immediate)
	case SYNTAX_RT_UIMM:
		text = fmt.Sprintf("%v, 0x%x", inst.Rt, inst.Immediate)
	case SYNTAX_RS_RT_OFF:
		text = fmt.Sprintf("%v, %v, %v", inst.Rs, inst.Rt, hexSigned(inst.SignedImmediate()))
	case SYNTAX_RS_OFF:
		text = fmt.Sprintf("%v, %v", inst.Rs, hexSigned(inst.SignedImmediate()))
	case SYNTAX_RT_MEM:
		text = fmt.Sprintf("%v, %v(%v)", inst.Rt, hexSigned(inst.SignedImmediate()), inst.Rs)
	case SYNTAX_TARGET:
		text = fmt.Sprintf("0x%07x", inst.Target)
	}

	return
}

// String returns the assembler text of the instruction.
func (inst Instruction) String() string {
	if inst.Word == 0 {
		return "nop"
	}

	operands := inst.Operands()
	if len(operands) == 0 {
		return inst.Op.Mnemonic
	}

	return fmt.Sprintf("%-7s %v", inst.Op.Mnemonic, operands)
}
