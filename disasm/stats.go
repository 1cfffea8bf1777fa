package disasm

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/olekukonko/tablewriter"

	"github.com/ezrec/psfdis/mips"
)

// Stats summarizes a listing.
type Stats struct {
	Words     int                    // Total words.
	Known     int                    // Words that decoded to a known operation.
	Layouts   [mips.LAYOUT_COUNT]int // Words per layout.
	Unknown   [mips.LAYOUT_COUNT]int // Unrecognized words per layout.
	Mnemonics map[string]int         // Occurrences per mnemonic.
}

// MnemonicCount is the number of occurrences of an operation.
type MnemonicCount struct {
	Mnemonic string
	Count    int
}

// NewStats summarizes the lines.
func NewStats(lines []Line) (st *Stats) {
	st = &Stats{
		Mnemonics: map[string]int{},
	}

	for _, line := range lines {
		st.Add(line)
	}

	return
}

// Add a line to the summary.
func (st *Stats) Add(line Line) {
	if st.Mnemonics == nil {
		st.Mnemonics = map[string]int{}
	}

	layout := line.Layout()

	st.Words++
	st.Layouts[layout]++
	if !line.Known() {
		st.Unknown[layout]++
		return
	}

	st.Known++
	st.Mnemonics[line.Mnemonic()]++
}

// Coverage returns the fraction of words that are known operations.
func (st *Stats) Coverage() float64 {
	if st.Words == 0 {
		return 0
	}
	return float64(st.Known) / float64(st.Words)
}

// Top returns the n most frequent mnemonics, most frequent first, with ties
// in mnemonic order. All mnemonics are returned if n <= 0.
func (st *Stats) Top(n int) (top []MnemonicCount) {
	for _, mnemonic := range slices.Sorted(maps.Keys(st.Mnemonics)) {
		top = append(top, MnemonicCount{Mnemonic: mnemonic, Count: st.Mnemonics[mnemonic]})
	}

	slices.SortStableFunc(top, func(a, b MnemonicCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if n > 0 && len(top) > n {
		top = top[:n]
	}

	return
}

// WriteTable writes the summary as text tables.
func (st *Stats) WriteTable(w io.Writer, top int) {
	fmt.Fprintf(w, "words %d, known %d (%.1f%%)\n", st.Words, st.Known, st.Coverage()*100)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Layout", "Words", "Unknown"})
	for layout := range mips.Layout(mips.LAYOUT_COUNT) {
		table.Append([]string{
			layout.String(),
			fmt.Sprint(st.Layouts[layout]),
			fmt.Sprint(st.Unknown[layout]),
		})
	}
	table.Render()

	table = tablewriter.NewWriter(w)
	table.SetHeader([]string{"Mnemonic", "Count"})
	for _, mc := range st.Top(top) {
		table.Append([]string{mc.Mnemonic, fmt.Sprint(mc.Count)})
	}
	table.Render()
}
