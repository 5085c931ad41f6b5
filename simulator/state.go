package simulator

import (
	"github.com/ezrec/mipsviz/mips"
)

const (
	REGISTER_ROWS  = 5 // Registers shown per snapshot.
	PROGRAM_WINDOW = 2 // Instructions shown before and after the executed one.
)

// Marker flags the currently-relevant program rows for display.
type Marker int

const (
	MARK_NONE     = Marker(0)
	MARK_EXECUTED = Marker(1) // The instruction this step ran.
	MARK_NEXT     = Marker(2) // The instruction the Pc points at.
)

// ProgramRow is a single program store snapshot entry.
type ProgramRow struct {
	Addr   uint32
	Code32 uint32
	Text   string
	Op     string
	Marker Marker
}

// State is the machine-state snapshot handed to the display collaborator
// after each step and at run end.
type State struct {
	Elapsed float64 // Accumulated simulated time in seconds.
	Cycles  int
	Pc      uint32
	Class   mips.Class
	Text    string // Text of the last executed instruction.
	HasInst bool
	Halted  bool

	Registers []mips.RegisterRow
	Program   []ProgramRow
	Memory    []mips.MemoryRow
}

// programRow builds the display row for one instruction index.
func (sim *Simulator) programRow(index int) (row ProgramRow) {
	inst, _ := sim.Cpu.Program.Fetch(index)

	row = ProgramRow{
		Addr:   uint32(index * 4),
		Code32: inst.Code32,
		Text:   inst.Text,
		Op:     inst.Op,
	}

	switch index {
	case sim.executed:
		row.Marker = MARK_EXECUTED
	case int(sim.Cpu.Pc / 4):
		row.Marker = MARK_NEXT
	}

	return
}

// State returns the per-step snapshot: a program window around the
// executed instruction, the most recently written registers, and the
// grouped data memory rows.
func (sim *Simulator) State() (st *State) {
	st = sim.header()

	center := sim.executed
	if center < 0 {
		center = 0
	}
	first := max(0, center-PROGRAM_WINDOW)
	last := min(sim.Cpu.Program.Len(), center+PROGRAM_WINDOW+1)

	for index := first; index < last; index++ {
		st.Program = append(st.Program, sim.programRow(index))
	}

	return
}

// FinalState returns the run-end snapshot with the full program listing.
func (sim *Simulator) FinalState() (st *State) {
	st = sim.header()

	for index := range sim.Cpu.Program.Len() {
		st.Program = append(st.Program, sim.programRow(index))
	}

	return
}

func (sim *Simulator) header() (st *State) {
	st = &State{
		Elapsed:   sim.Cpu.Clock.Elapsed,
		Cycles:    sim.Cpu.Clock.Cycles,
		Pc:        sim.Cpu.Pc,
		Halted:    sim.Cpu.Halted,
		Registers: sim.Cpu.Registers.Snapshot(REGISTER_ROWS),
		Memory:    sim.Cpu.Memory.Rows(),
	}

	inst, ok := sim.Cpu.Program.Fetch(sim.executed)
	if sim.executed >= 0 && ok {
		st.Class = inst.Class
		st.Text = inst.Text
		st.HasInst = true
	}

	return
}
