package mips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert := assert.New(t)

	count := map[Layout]int{}
	for primary := range uint8(64) {
		layout := Classify(primary)
		assert.True(layout.Valid(), "primary 0x%02x", primary)
		count[layout]++

		switch primary {
		case 0x00:
			assert.Equal(LAYOUT_REGISTER, layout)
		case 0x02, 0x03:
			assert.Equal(LAYOUT_JUMP, layout)
		default:
			assert.Equal(LAYOUT_IMMEDIATE, layout, "primary 0x%02x", primary)
		}
	}

	assert.Equal(1, count[LAYOUT_REGISTER])
	assert.Equal(2, count[LAYOUT_JUMP])
	assert.Equal(61, count[LAYOUT_IMMEDIATE])

	// Only the low six bits are significant.
	assert.Equal(LAYOUT_REGISTER, Classify(0x40))
	assert.Equal(LAYOUT_JUMP, Classify(0xc2))
}

func TestLayoutString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("R", LAYOUT_REGISTER.String())
	assert.Equal("I", LAYOUT_IMMEDIATE.String())
	assert.Equal("J", LAYOUT_JUMP.String())
	assert.Equal("Layout(3)", Layout(3).String())
	assert.False(Layout(3).Valid())
	assert.False(Layout(-1).Valid())
}

func TestWordLayout(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(LAYOUT_REGISTER, Word(0x00851021).Layout())
	assert.Equal(LAYOUT_IMMEDIATE, Word(0x3c018001).Layout())
	assert.Equal(LAYOUT_JUMP, Word(0x0c004000).Layout())
	assert.Equal(LAYOUT_JUMP, Word(0x08000000).Layout())
}
