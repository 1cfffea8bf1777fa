package mips

import (
	"errors"

	"github.com/ezrec/psfdis/translate"
)

var f = translate.From

var (
	// Catalog construction errors
	ErrCatalogDuplicate = errors.New(f("catalog key duplicated"))
	ErrCatalogMnemonic  = errors.New(f("catalog mnemonic duplicated"))
	ErrCatalogEmpty     = errors.New(f("catalog mnemonic missing"))
	ErrCatalogLayout    = errors.New(f("catalog layout mismatch"))
	ErrCatalogField     = errors.New(f("catalog code out of range"))
)

// ErrCatalog reports the operation that could not be added to a catalog.
type ErrCatalog struct {
	Op  Operation
	Err error
}

func (err ErrCatalog) Error() string {
	return f("operation %v (%v 0x%02x/0x%02x) %v",
		err.Op.Mnemonic, err.Op.Layout, err.Op.Primary, err.Op.Secondary, err.Err)
}

func (err ErrCatalog) Unwrap() error {
	return err.Err
}

// ErrUnrecognized is returned for a word whose codes name no operation in
// the catalog of its layout. It is an expected result when scanning data
// that is not code.
type ErrUnrecognized struct {
	Word      Word
	Layout    Layout
	Primary   uint8
	Secondary uint8 // Only set for LAYOUT_REGISTER.
}

// HasSecondary returns true if the Secondary code was part of the lookup.
func (err ErrUnrecognized) HasSecondary() bool {
	return err.Layout == LAYOUT_REGISTER
}

func (err ErrUnrecognized) Error() string {
	if err.HasSecondary() {
		return f("unrecognized %v word 0x%08x primary 0x%02x secondary 0x%02x",
			err.Layout, uint32(err.Word), err.Primary, err.Secondary)
	}
	return f("unrecognized %v word 0x%08x primary 0x%02x",
		err.Layout, uint32(err.Word), err.Primary)
}

// Is matches any ErrUnrecognized, so errors.Is(err, ErrUnrecognized{}) works.
func (err ErrUnrecognized) Is(target error) (ok bool) {
	_, ok = target.(ErrUnrecognized)
	return
}
