// Package simulator wires the mips execution engine into a single
// steppable machine and produces the per-step state snapshots consumed
// by the display layer.
package simulator

import (
	"io"

	"github.com/ezrec/mipsviz/mips"
)

// Simulator state. CPU + program + data memory + clock.
type Simulator struct {
	Verbose   bool // If set, enables verbose logging.
	*mips.Cpu      // Reference to the machine simulation.

	Config mips.Config // Validated CPU configuration.

	executed int // Index of the last executed instruction, -1 before the first step.
}

// New creates a simulator from a loaded source. A memorySize of 0
// selects the default data memory size.
func New(src *mips.Source, memorySize int) (sim *Simulator, err error) {
	if memorySize <= 0 {
		memorySize = mips.MEMORY_SIZE
	}

	prog := &mips.Program{}
	err = prog.Load(src.Lines)
	if err != nil {
		return
	}

	sim = &Simulator{
		Cpu:      mips.NewCpu(prog, mips.NewMemory(memorySize), mips.NewClock(src.Config)),
		Config:   src.Config,
		executed: -1,
	}

	return
}

// Load builds a simulator directly from a source stream.
func Load(input io.Reader, memorySize int) (sim *Simulator, err error) {
	src, err := mips.LoadSource(input)
	if err != nil {
		return
	}

	return New(src, memorySize)
}

// Step executes a single instruction. Any execution failure is a
// simulator correctness report and stops the run; the machine state is
// left exactly as of the last completed step.
func (sim *Simulator) Step() (done bool, err error) {
	sim.Cpu.Verbose = sim.Verbose

	pc := sim.Cpu.Pc

	done, err = sim.Cpu.Step()
	if err != nil {
		inst, _ := sim.Cpu.Program.Fetch(int(pc / 4))
		err = &ErrRuntime{Pc: pc, Text: inst.Text, Err: err}
		return
	}

	if !done {
		sim.executed = int(pc / 4)
	}

	return
}

// Run steps the machine to completion, up to maxSteps instructions
// (0 means unlimited).
func (sim *Simulator) Run(maxSteps int) (steps int, err error) {
	for {
		var done bool
		done, err = sim.Step()
		if done || err != nil {
			return
		}
		steps++
		if maxSteps > 0 && steps >= maxSteps {
			return
		}
	}
}
