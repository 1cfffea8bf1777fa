// Package mips decodes instruction words of the MIPS R3000A processor used
// by the Playstation.
//
// Every 32-bit word shares a 6-bit primary code in bits 26-31. The primary
// code alone selects one of three layouts: the register form (R) for
// primary 0, the jump form (J) for primaries 2 and 3, and the immediate
// form (I) for every other value. The layout fixes how the remaining bits
// split into operand fields, and the Catalog for that layout decides
// whether the word names a known operation.
//
// Decoding is pure. Catalogs are read-only once built, so a Decoder may be
// shared by any number of goroutines.
package mips
