package disasm

import (
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/psfdis/internal"
)

// filterNames are the values predeclared for a filter expression. Field
// values are the raw bit fields of the word, whatever its layout.
var filterNames = map[string]bool{
	"address":  true, // Load address of the word.
	"word":     true, // Raw word.
	"layout":   true, // "R", "I" or "J".
	"known":    true, // True if the word is a known operation.
	"mnemonic": true, // Operation mnemonic, "" if unknown.
	"primary":  true,
	"rs":       true,
	"rt":       true,
	"rd":       true,
	"shamt":    true,
	"funct":    true,
	"imm":      true,
	"simm":     true, // Sign extended immediate.
	"target":   true,
}

// Filter selects listing lines with a Starlark boolean expression, ie:
//
//	known and mnemonic in ("jal", "jr")
//	layout == "I" and rs == 29
type Filter struct {
	Expr    string
	program *starlark.Program
}

// NewFilter compiles a filter expression. The text must be exactly one
// expression, optionally followed by a comment. Names other than the
// predeclared values and the Starlark builtins are rejected.
func NewFilter(expr string) (flt *Filter, err error) {
	opts := syntax.FileOptions{}

	_, err = opts.ParseExpr("filter", expr, 0)
	if err != nil {
		err = ErrFilter{Expr: expr, Err: err}
		return
	}

	prog := "rc = (\n" + expr + "\n)\n"
	_, program, err := starlark.SourceProgramOptions(&opts, "filter", prog, func(name string) bool {
		return filterNames[name]
	})
	if err != nil {
		err = ErrFilter{Expr: expr, Err: err}
		return
	}

	flt = &Filter{
		Expr:    expr,
		program: program,
	}

	return
}

func predeclared(line Line) starlark.StringDict {
	w := line.Word
	return starlark.StringDict{
		"address":  starlark.MakeUint64(uint64(line.Address)),
		"word":     starlark.MakeUint64(uint64(w)),
		"layout":   starlark.String(line.Layout().String()),
		"known":    starlark.Bool(line.Known()),
		"mnemonic": starlark.String(line.Mnemonic()),
		"primary":  starlark.MakeInt(int(w.Primary())),
		"rs":       starlark.MakeInt(int(w.Rs())),
		"rt":       starlark.MakeInt(int(w.Rt())),
		"rd":       starlark.MakeInt(int(w.Rd())),
		"shamt":    starlark.MakeInt(int(w.Shamt())),
		"funct":    starlark.MakeInt(int(w.Funct())),
		"imm":      starlark.MakeInt(int(w.Immediate())),
		"simm":     starlark.MakeInt(int(int16(w.Immediate()))),
		"target":   starlark.MakeInt(int(w.Target())),
	}
}

// Match evaluates the filter against a line.
func (flt *Filter) Match(line Line) (ok bool, err error) {
	thread := starlark.Thread{Name: "filter"}

	dict, err := flt.program.Init(&thread, predeclared(line))
	if err != nil {
		err = ErrFilter{Expr: flt.Expr, Address: line.Address, Err: err}
		return
	}

	rc, valid := dict["rc"].(starlark.Bool)
	if !valid {
		err = ErrFilter{Expr: flt.Expr, Address: line.Address, Err: ErrFilterResult}
		return
	}

	ok = bool(rc)
	return
}

// Select returns the lines the filter matches, stopping at the first
// evaluation error. A nil filter selects every line.
func (flt *Filter) Select(lines []Line) (selected []Line, err error) {
	if flt == nil {
		selected = lines
		return
	}

	keep := func(line Line) bool {
		if err != nil {
			return false
		}
		var ok bool
		ok, err = flt.Match(line)
		return ok
	}

	for line := range internal.IterSeqFilter(slices.Values(lines), keep) {
		selected = append(selected, line)
	}

	if err != nil {
		selected = nil
		return
	}

	if selected == nil {
		selected = []Line{}
	}

	return
}
