package disasm

import (
	"fmt"

	"github.com/ezrec/psfdis/mips"
)

// Line is one decoded word of a listing.
type Line struct {
	Address     uint32                // Load address of the word.
	Offset      int                   // Byte offset of the word in the image code.
	Word        mips.Word             // Raw word.
	Instruction mips.Instruction      // Decoded instruction, if known.
	Unknown     *mips.ErrUnrecognized // Set if the word is not a known operation.
}

// Known returns true if the word decoded to a known operation. A Line
// built without a decoded instruction is not known.
func (line Line) Known() bool {
	return line.Unknown == nil && line.Instruction.Op != nil
}

// Layout returns the layout the word was classified as.
func (line Line) Layout() mips.Layout {
	switch {
	case line.Unknown != nil:
		return line.Unknown.Layout
	case line.Instruction.Op != nil:
		return line.Instruction.Layout()
	}
	return line.Word.Layout()
}

// Mnemonic returns the operation mnemonic, or the empty string.
func (line Line) Mnemonic() string {
	if !line.Known() {
		return ""
	}
	return line.Instruction.Mnemonic()
}

// Text returns the assembler text of the word.
func (line Line) Text() string {
	if line.Unknown != nil {
		if line.Unknown.HasSecondary() {
			return fmt.Sprintf(".word   0x%08x ; %v primary 0x%02x secondary 0x%02x",
				uint32(line.Word), line.Unknown.Layout, line.Unknown.Primary, line.Unknown.Secondary)
		}
		return fmt.Sprintf(".word   0x%08x ; %v primary 0x%02x",
			uint32(line.Word), line.Unknown.Layout, line.Unknown.Primary)
	}

	if line.Instruction.Op == nil {
		return fmt.Sprintf(".word   0x%08x", uint32(line.Word))
	}

	return line.Instruction.String()
}

// String returns the listing line: address, raw word, and assembler text.
func (line Line) String() string {
	return fmt.Sprintf("%08x: %v  %v", line.Address, line.Word, line.Text())
}

// Record is the serialized form of a Line.
type Record struct {
	Address     uint32  `json:"address" yaml:"address"`
	Word        uint32  `json:"word" yaml:"word"`
	Layout      string  `json:"layout" yaml:"layout"`
	Known       bool    `json:"known" yaml:"known"`
	Mnemonic    string  `json:"mnemonic,omitempty" yaml:"mnemonic,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Primary     uint8   `json:"primary" yaml:"primary"`
	Secondary   *uint8  `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Rs          *uint8  `json:"rs,omitempty" yaml:"rs,omitempty"`
	Rt          *uint8  `json:"rt,omitempty" yaml:"rt,omitempty"`
	Rd          *uint8  `json:"rd,omitempty" yaml:"rd,omitempty"`
	Shamt       *uint8  `json:"shamt,omitempty" yaml:"shamt,omitempty"`
	Immediate   *uint16 `json:"immediate,omitempty" yaml:"immediate,omitempty"`
	Target      *uint32 `json:"target,omitempty" yaml:"target,omitempty"`
	Text        string  `json:"text" yaml:"text"`
}

func ptr[T any](value T) *T {
	return &value
}

// Record returns the serialized form of the line. Operand fields are only
// present for the layout of a known operation.
func (line Line) Record() (rec Record) {
	rec = Record{
		Address: line.Address,
		Word:    uint32(line.Word),
		Layout:  line.Layout().String(),
		Known:   line.Known(),
		Primary: line.Word.Primary(),
		Text:    line.Text(),
	}

	if line.Unknown != nil {
		if line.Unknown.HasSecondary() {
			rec.Secondary = ptr(line.Unknown.Secondary)
		}
		return
	}

	if !line.Known() {
		return
	}

	inst := line.Instruction
	rec.Mnemonic = inst.Op.Mnemonic
	rec.Description = inst.Op.Description

	switch inst.Layout() {
	case mips.LAYOUT_REGISTER:
		rec.Secondary = ptr(inst.Funct)
		rec.Rs = ptr(uint8(inst.Rs))
		rec.Rt = ptr(uint8(inst.Rt))
		rec.Rd = ptr(uint8(inst.Rd))
		rec.Shamt = ptr(inst.Shamt)
	case mips.LAYOUT_IMMEDIATE:
		rec.Rs = ptr(uint8(inst.Rs))
		rec.Rt = ptr(uint8(inst.Rt))
		rec.Immediate = ptr(inst.Immediate)
	case mips.LAYOUT_JUMP:
		rec.Target = ptr(inst.Target)
	}

	return
}
