package disasm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	assert := assert.New(t)

	st := NewStats(testListing(t))

	assert.Equal(7, st.Words)
	assert.Equal(5, st.Known)
	assert.Equal([3]int{3, 3, 1}, st.Layouts)
	assert.Equal([3]int{1, 1, 0}, st.Unknown)
	assert.InDelta(5.0/7.0, st.Coverage(), 1e-9)

	assert.Equal([]MnemonicCount{{"addiu", 1}, {"jal", 1}}, st.Top(2))
	assert.Len(st.Top(0), 5)

	st.Add(NewDisassembler(nil).Line(makeImage([]uint32{0x03e00008}), 0))
	assert.Equal(MnemonicCount{"jr", 2}, st.Top(1)[0])

	var empty Stats
	assert.Equal(0.0, empty.Coverage())
	assert.Empty(empty.Top(3))

	var out strings.Builder
	st.WriteTable(&out, 3)
	text := out.String()
	assert.True(strings.HasPrefix(text, "words 8, known 6 (75.0%)\n"), text)
	assert.Contains(text, "jr")
	assert.NotContains(text, "sll")
}
