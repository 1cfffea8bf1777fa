package psf

import (
	"encoding/binary"

	"github.com/ezrec/psfdis/mips"
)

// WORD_SIZE is the size in bytes of an instruction word.
const WORD_SIZE = 4

// Image is a code buffer handed to the decoder. Instruction words start at
// Offset and are little-endian; a trailing partial word is ignored.
type Image struct {
	Code   []byte // Code buffer.
	Offset int    // Byte offset of the first instruction word in Code.
	Base   uint32 // Address of Code[0].
}

// Validate checks that Offset lies inside Code and is word aligned.
func (img Image) Validate() (err error) {
	switch {
	case img.Offset < 0 || img.Offset > len(img.Code):
		err = ErrImageOffset
	case img.Offset%WORD_SIZE != 0:
		err = ErrImageAlign
	}

	return
}

// Len returns the number of whole words in the image.
func (img Image) Len() int {
	if img.Offset < 0 || img.Offset > len(img.Code) {
		return 0
	}
	return (len(img.Code) - img.Offset) / WORD_SIZE
}

// ByteOffset returns the offset in Code of word n.
func (img Image) ByteOffset(n int) int {
	return img.Offset + n*WORD_SIZE
}

// Address returns the load address of word n.
func (img Image) Address(n int) uint32 {
	return img.Base + uint32(img.ByteOffset(n))
}

// Word returns word n, converted from little-endian.
func (img Image) Word(n int) mips.Word {
	return mips.Word(binary.LittleEndian.Uint32(img.Code[img.ByteOffset(n):]))
}
