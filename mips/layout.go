package mips

// Layout is the bit partition an instruction word follows.
type Layout int

//go:generate go tool stringer -linecomment -type=Layout
const (
	LAYOUT_REGISTER  = Layout(0) // R
	LAYOUT_IMMEDIATE = Layout(1) // I
	LAYOUT_JUMP      = Layout(2) // J
)

// LAYOUT_COUNT is the number of layouts.
const LAYOUT_COUNT = 3

// Primary codes reserved by the classifier.
const (
	PRIMARY_SPECIAL = uint8(0x00) // All register form operations.
	PRIMARY_J       = uint8(0x02)
	PRIMARY_JAL     = uint8(0x03)
)

// Valid returns true if the layout is one of the three known layouts.
func (layout Layout) Valid() bool {
	return layout >= LAYOUT_REGISTER && layout <= LAYOUT_JUMP
}

// Classify returns the layout for a primary code. Only the low 6 bits of
// primary are significant, and every value maps to exactly one layout.
func Classify(primary uint8) (layout Layout) {
	switch primary & PRIMARY_MASK {
	case PRIMARY_SPECIAL:
		layout = LAYOUT_REGISTER
	case PRIMARY_J, PRIMARY_JAL:
		layout = LAYOUT_JUMP
	default:
		layout = LAYOUT_IMMEDIATE
	}

	return
}

// Layout returns the layout of the word.
func (w Word) Layout() Layout {
	return Classify(w.Primary())
}
