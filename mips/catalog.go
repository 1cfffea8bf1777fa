package mips

import (
	"cmp"
	"iter"
	"slices"
)

// Catalog maps the codes of each layout to the operations they name.
// A Catalog is read-only once NewCatalog returns it.
type Catalog struct {
	table    [LAYOUT_COUNT]map[Key]*Operation
	mnemonic map[string]*Operation
	ops      []Operation
}

// NewCatalog builds a catalog from a list of operations. It fails if two
// operations share a key inside a layout, if a mnemonic is used twice, or if
// an operation could never be reached by the classifier.
func NewCatalog(ops ...Operation) (cat *Catalog, err error) {
	cat = &Catalog{
		mnemonic: make(map[string]*Operation, len(ops)),
		ops:      slices.Clone(ops),
	}

	for n := range cat.table {
		cat.table[n] = make(map[Key]*Operation)
	}

	for n := range cat.ops {
		op := &cat.ops[n]
		err = cat.insert(op)
		if err != nil {
			cat = nil
			err = ErrCatalog{Op: *op, Err: err}
			return
		}
	}

	return
}

// MustCatalog is like NewCatalog, but panics on a defective table.
func MustCatalog(ops ...Operation) *Catalog {
	cat, err := NewCatalog(ops...)
	if err != nil {
		panic(err)
	}
	return cat
}

func (cat *Catalog) insert(op *Operation) (err error) {
	switch {
	case len(op.Mnemonic) == 0:
		return ErrCatalogEmpty
	case !op.Layout.Valid():
		return ErrCatalogLayout
	case op.Primary > PRIMARY_MASK || op.secondary() > FUNCT_MASK:
		return ErrCatalogField
	case Classify(op.Primary) != op.Layout:
		return ErrCatalogLayout
	}

	table := cat.table[op.Layout]
	key := op.Key()
	if _, ok := table[key]; ok {
		return ErrCatalogDuplicate
	}
	if _, ok := cat.mnemonic[op.Mnemonic]; ok {
		return ErrCatalogMnemonic
	}

	table[key] = op
	cat.mnemonic[op.Mnemonic] = op

	return
}

// Lookup finds the operation for a key in a layout's table.
func (cat *Catalog) Lookup(layout Layout, key Key) (op *Operation, ok bool) {
	if !layout.Valid() {
		return
	}
	op, ok = cat.table[layout][key]
	return
}

// Find returns the operation with the given mnemonic.
func (cat *Catalog) Find(mnemonic string) (op *Operation, ok bool) {
	op, ok = cat.mnemonic[mnemonic]
	return
}

// Len returns the number of operations in the catalog.
func (cat *Catalog) Len() int {
	return len(cat.ops)
}

// Operations returns the operations ordered by layout, primary and secondary code.
func (cat *Catalog) Operations() iter.Seq[*Operation] {
	sorted := make([]*Operation, 0, len(cat.ops))
	for n := range cat.ops {
		sorted = append(sorted, &cat.ops[n])
	}
	slices.SortFunc(sorted, func(a, b *Operation) int {
		return cmp.Or(
			cmp.Compare(a.Layout, b.Layout),
			cmp.Compare(a.Primary, b.Primary),
			cmp.Compare(a.secondary(), b.secondary()),
		)
	})

	return slices.Values(sorted)
}
