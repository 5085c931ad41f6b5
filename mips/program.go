package mips

import (
	"iter"
	"strings"
)

// Program is the program store: the ordered instruction sequence and the
// label table built at load time. Immutable after Load.
type Program struct {
	Instructions []Instruction
	labels       map[string]int
}

// Load consumes pre-filtered, non-empty, non-comment lines. A line ending
// in ':' binds a label to the index the next instruction will occupy;
// every other line becomes an instruction entry in order.
func (prog *Program) Load(lines []string) (err error) {
	prog.Instructions = prog.Instructions[:0]
	prog.labels = make(map[string]int, 16)

	for _, line := range lines {
		if strings.HasSuffix(line, ":") {
			label := strings.TrimSpace(strings.TrimSuffix(line, ":"))
			_, ok := prog.labels[label]
			if ok {
				err = ErrLabelDuplicate
				return
			}
			prog.labels[label] = len(prog.Instructions)
			continue
		}

		prog.Instructions = append(prog.Instructions, Decode(line))
	}

	if len(prog.Instructions) == 0 {
		err = ErrMalformedProgram
		return
	}

	return
}

// ResolveLabel returns the instruction index a label is bound to.
func (prog *Program) ResolveLabel(name string) (index int, err error) {
	index, ok := prog.labels[name]
	if !ok {
		err = ErrUndefinedLabel(name)
		return
	}

	return
}

// Fetch returns the instruction entry at an index, or ok=false when the
// index is past the end of the program.
func (prog *Program) Fetch(index int) (inst Instruction, ok bool) {
	if index < 0 || index >= len(prog.Instructions) {
		return
	}

	return prog.Instructions[index], true
}

// Entries iterates the program in order, yielding each instruction with
// its index.
func (prog *Program) Entries() iter.Seq2[int, Instruction] {
	return func(yield func(index int, inst Instruction) bool) {
		for n, inst := range prog.Instructions {
			if !yield(n, inst) {
				return
			}
		}
	}
}

// Len returns the number of instruction entries.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}
