package psf

import (
	"errors"

	"github.com/ezrec/psfdis/translate"
)

var f = translate.From

var (
	// Container errors
	ErrSignature   = errors.New(f("not a PSF container"))
	ErrSectionSize = errors.New(f("section too large"))
	ErrInflate     = errors.New(f("program inflate failed"))

	// Executable errors
	ErrExecutableShort     = errors.New(f("executable header truncated"))
	ErrExecutableSignature = errors.New(f("not a PS-X EXE"))

	// Image errors
	ErrImageOffset = errors.New(f("image offset out of range"))
	ErrImageAlign  = errors.New(f("image offset not word aligned"))
)

// ErrFormat reports the container field that could not be read.
type ErrFormat struct {
	Field string
	Err   error
}

func (err ErrFormat) Error() string {
	return f("%v: %v", err.Field, err.Err)
}

func (err ErrFormat) Unwrap() error {
	return err.Err
}

// ErrCRCMismatch reports a compressed program whose CRC-32 does not match
// the container header.
type ErrCRCMismatch struct {
	Expected uint32
	Actual   uint32
}

func (err ErrCRCMismatch) Error() string {
	return f("crc32 mismatch: header 0x%08x, computed 0x%08x", err.Expected, err.Actual)
}

func (err ErrCRCMismatch) Is(target error) (ok bool) {
	_, ok = target.(ErrCRCMismatch)
	return
}
