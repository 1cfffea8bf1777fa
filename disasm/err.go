package disasm

import (
	"errors"

	"github.com/ezrec/psfdis/translate"
)

var f = translate.From

var (
	ErrFormat       = errors.New(f("unknown output format"))
	ErrFilterResult = errors.New(f("filter result is not a bool"))
)

// ErrFilter reports a filter expression that failed to compile, or failed
// when evaluated on the word at Address.
type ErrFilter struct {
	Expr    string
	Address uint32
	Err     error
}

func (err ErrFilter) Error() string {
	return f("filter '%v' at 0x%08x %v", err.Expr, err.Address, err.Err)
}

func (err ErrFilter) Unwrap() error {
	return err.Err
}
