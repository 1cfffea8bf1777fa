package mips

import (
	"fmt"
)

// Register is a general purpose register index, 0-31.
type Register uint8

var registerNames = [32]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// String returns the conventional assembler name of the register.
func (reg Register) String() string {
	if int(reg) < len(registerNames) {
		return "$" + registerNames[reg]
	}
	return fmt.Sprintf("$%d", uint8(reg))
}
