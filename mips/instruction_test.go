package mips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word Word
		text string
	}){
		{0x00000000, "nop"},
		{0x00851021, "addu    $v0, $a0, $a1"},
		{0x000947c0, "sll     $t0, $t1, 31"},
		{0x00a41004, "sllv    $v0, $a0, $a1"},
		{0x03e00008, "jr      $ra"},
		{0x0040f809, "jalr    $ra, $v0"},
		{0x00001010, "mfhi    $v0"},
		{0x00850018, "mult    $a0, $a1"},
		{0x0000000c, "syscall 0x0"},
		{0x0001000d, "break   0x400"},
		{0x3c018001, "lui     $at, 0x8001"},
		{0x27bdffe8, "addiu   $sp, $sp, -0x18"},
		{0x3442beef, "ori     $v0, $v0, 0xbeef"},
		{0x8fbf0014, "lw      $ra, 0x14($sp)"},
		{0xa082fffe, "sb      $v0, -0x2($a0)"},
		{0x1440fffc, "bne     $v0, $zero, -0x4"},
		{0x18800003, "blez    $a0, 0x3"},
		{0x0c004000, "jal     0x0004000"},
	}

	for _, entry := range table {
		inst, err := Decode(entry.word)
		if assert.NoError(err, "0x%08x", uint32(entry.word)) {
			assert.Equal(entry.text, inst.String(), "0x%08x", uint32(entry.word))
		}
	}
}
