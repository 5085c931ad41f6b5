// Package console renders machine-state snapshots as text tables and
// paces the interactive step loop from the terminal.
package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ezrec/mipsviz/simulator"
	"github.com/ezrec/mipsviz/translate"
)

var f = translate.From

// FormatSeconds renders a duration in the largest time unit that keeps
// the value at or above 1.
func FormatSeconds(seconds float64) (text string) {
	switch {
	case seconds >= 1:
		text = fmt.Sprintf("%.6f s", seconds)
	case seconds*1e3 >= 1:
		text = fmt.Sprintf("%.3f ms", seconds*1e3)
	case seconds*1e6 >= 1:
		text = fmt.Sprintf("%.3f µs", seconds*1e6)
	default:
		text = fmt.Sprintf("%.3f ns", seconds*1e9)
	}

	return
}

// markerText maps program row markers to their display glyphs.
func markerText(marker simulator.Marker) (text string) {
	switch marker {
	case simulator.MARK_EXECUTED:
		text = "→" // →
	case simulator.MARK_NEXT:
		text = "⇒" // ⇒
	}

	return
}

// Render writes the per-step machine state tables.
func Render(w io.Writer, st *simulator.State) {
	tw := tabwriter.NewWriter(w, 2, 2, 2, ' ', 0)

	fmt.Fprintf(tw, "%v\t%v\n", f("Time"), FormatSeconds(st.Elapsed))
	fmt.Fprintf(tw, "%v\t%v\n", f("Cycles"), st.Cycles)
	fmt.Fprintf(tw, "%v\t0x%08X\n", f("PC"), st.Pc)
	if st.HasInst {
		fmt.Fprintf(tw, "%v\t%v\n", f("Type"), st.Class)
		fmt.Fprintf(tw, "%v\t%v\n", f("Instr"), st.Text)
	}
	tw.Flush()

	renderRegisters(w, st)
	renderProgram(w, st)
	renderMemory(w, st)

	fmt.Fprintf(w, "\n%v\n\n", divider)
}

// RenderFinal writes the run-end machine state tables, with the full
// program listing.
func RenderFinal(w io.Writer, st *simulator.State) {
	fmt.Fprintf(w, "%v\n", f("=== Final state ==="))

	renderRegisters(w, st)
	renderProgram(w, st)
	renderMemory(w, st)

	fmt.Fprintf(w, "\n%v %v\n", f("Total time:"), FormatSeconds(st.Elapsed))
}

const divider = "============================================================"

func renderRegisters(w io.Writer, st *simulator.State) {
	fmt.Fprintf(w, "\n%v\n", f("Registers:"))

	tw := tabwriter.NewWriter(w, 2, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "%v\t%v\t%v\t%v\n", f("Num"), f("Name"), f("Hex"), f("Dec"))
	for _, row := range st.Registers {
		fmt.Fprintf(tw, "%v\t%v\t%#x\t%v\n", row.Index, row.Name, row.Value, row.Value)
	}
	tw.Flush()
}

func renderProgram(w io.Writer, st *simulator.State) {
	fmt.Fprintf(w, "\n%v\n", f("Program memory (.text):"))

	tw := tabwriter.NewWriter(w, 2, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "\t%v\t%v\t%v\t%v\n", f("Address"), f("Code32"), f("Instr"), f("Op"))
	for _, row := range st.Program {
		fmt.Fprintf(tw, "%v\t0x%08X\t0x%08x\t%v\t%v\n",
			markerText(row.Marker), row.Addr, row.Code32, row.Text, row.Op)
	}
	tw.Flush()
}

func renderMemory(w io.Writer, st *simulator.State) {
	fmt.Fprintf(w, "\n%v\n", f("Data memory (.data):"))

	tw := tabwriter.NewWriter(w, 2, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "%v\t%v\t%v\t%v\n", f("Address"), f("Type"), f("Hex"), f("Dec"))
	for _, row := range st.Memory {
		dec := ""
		if row.HasDec {
			dec = fmt.Sprintf("%v", row.Dec)
		}
		fmt.Fprintf(tw, "0x%08X\t%v\t%v\t%v\n", row.Addr, row.Type, row.Hex, dec)
	}
	tw.Flush()
}
