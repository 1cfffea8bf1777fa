package disasm

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/psfdis/mips"
	"github.com/ezrec/psfdis/psf"
)

const testBase = 0x80010000

var testWords = []uint32{
	0x3c018001, // lui $at, 0x8001
	0x27bdffe8, // addiu $sp, $sp, -0x18
	0x0c004000, // jal 0x0004000
	0x00000000, // nop
	0x03e00008, // jr $ra
	0x0000003f, // unrecognized R
	0xfc000000, // unrecognized I
}

func makeImage(words []uint32) psf.Image {
	code := make([]byte, 0, len(words)*psf.WORD_SIZE)
	for _, w := range words {
		code = binary.LittleEndian.AppendUint32(code, w)
	}

	return psf.Image{Code: code, Base: testBase}
}

func testListing(t *testing.T) []Line {
	dis := NewDisassembler(nil)
	lines, err := dis.Listing(context.Background(), makeImage(testWords))
	require.NoError(t, err)
	require.Len(t, lines, len(testWords))
	return lines
}

func TestListing(t *testing.T) {
	assert := assert.New(t)

	lines := testListing(t)

	for n, line := range lines {
		assert.Equal(uint32(testBase+n*4), line.Address)
		assert.Equal(n*4, line.Offset)
		assert.Equal(mips.Word(testWords[n]), line.Word)
	}

	assert.True(lines[0].Known())
	assert.Equal("lui", lines[0].Mnemonic())
	assert.Equal(mips.LAYOUT_IMMEDIATE, lines[0].Layout())
	assert.Equal(mips.LAYOUT_JUMP, lines[2].Layout())
	assert.Equal("sll", lines[3].Mnemonic())

	unknown := lines[5]
	assert.False(unknown.Known())
	assert.Equal("", unknown.Mnemonic())
	if assert.NotNil(unknown.Unknown) {
		assert.Equal(mips.LAYOUT_REGISTER, unknown.Unknown.Layout)
		assert.Equal(uint8(0x3f), unknown.Unknown.Secondary)
	}
	assert.Equal(mips.LAYOUT_IMMEDIATE, lines[6].Layout())
}

func TestLineString(t *testing.T) {
	assert := assert.New(t)

	lines := testListing(t)

	expected := []string{
		"80010000: 3c018001  lui     $at, 0x8001",
		"80010004: 27bdffe8  addiu   $sp, $sp, -0x18",
		"80010008: 0c004000  jal     0x0004000",
		"8001000c: 00000000  nop",
		"80010010: 03e00008  jr      $ra",
		"80010014: 0000003f  .word   0x0000003f ; R primary 0x00 secondary 0x3f",
		"80010018: fc000000  .word   0xfc000000 ; I primary 0x3f",
	}

	for n, line := range lines {
		assert.Equal(expected[n], line.String())
	}
}

func TestLineUndecoded(t *testing.T) {
	assert := assert.New(t)

	line := Line{Address: 0x80010000, Word: 0x3c018001}

	assert.False(line.Known())
	assert.Equal(mips.LAYOUT_IMMEDIATE, line.Layout())
	assert.Equal("", line.Mnemonic())
	assert.Equal(".word   0x3c018001", line.Text())
	assert.Equal("80010000: 3c018001  .word   0x3c018001", line.String())

	rec := line.Record()
	assert.False(rec.Known)
	assert.Equal("I", rec.Layout)
	assert.Empty(rec.Mnemonic)
	assert.Nil(rec.Rs)

	var st Stats
	assert.NotPanics(func() { st.Add(line) })
	assert.Equal(1, st.Words)
	assert.Equal(0, st.Known)
	assert.Equal([3]int{0, 1, 0}, st.Unknown)
}

func TestListingWorkers(t *testing.T) {
	assert := assert.New(t)

	// Every primary and funct code, with assorted register fields.
	words := make([]uint32, 0, 5000)
	for n := range uint32(5000) {
		words = append(words, (n%64)<<26|(n*2654435761)&0x03ffffc0|(n/64)%64)
	}
	img := makeImage(words)

	serial := &Disassembler{Workers: 1, Chunk: len(words)}
	expected, err := serial.Listing(context.Background(), img)
	require.NoError(t, err)

	parallel := &Disassembler{
		Verbose: true,
		Logger:  hclog.NewNullLogger(),
		Workers: 4,
		Chunk:   97,
	}
	lines, err := parallel.Listing(context.Background(), img)
	require.NoError(t, err)

	assert.Empty(cmp.Diff(expected, lines))
}

func TestListingErrors(t *testing.T) {
	assert := assert.New(t)

	dis := NewDisassembler(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lines, err := dis.Listing(ctx, makeImage(testWords))
	assert.ErrorIs(err, context.Canceled)
	assert.Nil(lines)

	img := makeImage(testWords)
	img.Offset = 2
	lines, err = dis.Listing(context.Background(), img)
	assert.ErrorIs(err, psf.ErrImageAlign)
	assert.Nil(lines)

	lines, err = dis.Listing(context.Background(), psf.Image{})
	assert.NoError(err)
	assert.Empty(lines)
}

func TestListingCatalog(t *testing.T) {
	assert := assert.New(t)

	cat, err := mips.NewCatalog(mips.Operation{
		Mnemonic: "lui",
		Layout:   mips.LAYOUT_IMMEDIATE,
		Primary:  mips.PRIMARY_LUI,
		Syntax:   mips.SYNTAX_RT_UIMM,
	})
	require.NoError(t, err)

	dis := NewDisassembler(mips.NewDecoder(cat))
	lines, err := dis.Listing(context.Background(), makeImage(testWords))
	require.NoError(t, err)

	stats := NewStats(lines)
	assert.Equal(1, stats.Known)
	assert.Equal(map[string]int{"lui": 1}, stats.Mnemonics)
}
