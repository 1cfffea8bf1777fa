package mips

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzDecode(f *testing.F) {
	for primary := range uint32(64) {
		f.Add(primary << PRIMARY_SHIFT)
		f.Add(primary<<PRIMARY_SHIFT | 0x03ffffff)
	}
	for funct := range uint32(64) {
		f.Add(funct)
	}

	f.Fuzz(func(t *testing.T, word uint32) {
		assert := assert.New(t)

		w := Word(word)
		inst, err := Decode(w)

		layout := Classify(w.Primary())
		assert.True(layout.Valid())

		if err != nil {
			var unrec ErrUnrecognized
			if assert.True(errors.As(err, &unrec), "0x%08x", word) {
				assert.Equal(w, unrec.Word)
				assert.Equal(layout, unrec.Layout)
				assert.Equal(w.Primary(), unrec.Primary)
				if layout == LAYOUT_REGISTER {
					assert.Equal(w.Funct(), unrec.Secondary)
				} else {
					assert.Equal(uint8(0), unrec.Secondary)
				}
			}
			assert.Nil(inst.Op)
			return
		}

		assert.Equal(w, inst.Word)
		assert.Equal(layout, inst.Layout())
		assert.Equal(w.Primary(), inst.Op.Primary)

		// Re-encoding the decoded fields gives back the original word.
		var again Word
		switch layout {
		case LAYOUT_REGISTER:
			again = MakeWordRegister(inst.Rs, inst.Rt, inst.Rd, inst.Shamt, inst.Funct)
			assert.Equal(inst.Op.Secondary, inst.Funct)
		case LAYOUT_IMMEDIATE:
			again = MakeWordImmediate(inst.Op.Primary, inst.Rs, inst.Rt, inst.Immediate)
		case LAYOUT_JUMP:
			again = MakeWordJump(inst.Op.Primary, inst.Target)
		}
		assert.Equal(w, again, "0x%08x %v", word, inst)

		assert.NotEmpty(inst.String())
	})
}
