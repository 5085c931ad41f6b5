package mips

const (
	REGISTER_COUNT = 32 // Fixed register file cardinality.
)

// registerNames is the canonical register name table. Index 0 is the
// hard-wired always-zero register.
var registerNames = [REGISTER_COUNT]string{
	"$zero", "$at", "$v0", "$v1", "$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9", "$k0", "$k1", "$gp", "$sp", "$fp", "$ra",
}

// registerIndex maps register names to table indexes.
var registerIndex = func() (index map[string]int) {
	index = make(map[string]int, REGISTER_COUNT)
	for n, name := range registerNames {
		index[name] = n
	}
	return
}()

// RegisterRow is a single register file snapshot entry.
type RegisterRow struct {
	Index int
	Name  string
	Value int32
}

// RegisterFile holds the 32 fixed-named 32-bit registers and tracks the
// most-recently-written order for display.
type RegisterFile struct {
	values [REGISTER_COUNT]int32
	recent []int
}

// RegisterName returns the canonical name for a register index.
func RegisterName(index int) (name string, ok bool) {
	if index < 0 || index >= REGISTER_COUNT {
		return
	}

	return registerNames[index], true
}

// LookupRegister resolves a register name to its table index.
func LookupRegister(name string) (index int, ok bool) {
	index, ok = registerIndex[name]
	return
}

// Write stores a 32-bit value into the named register and records it as
// most-recently-written. Writes to the zero register are discarded.
func (rf *RegisterFile) Write(name string, value int32) (err error) {
	index, ok := registerIndex[name]
	if !ok {
		err = ErrRegisterInvalid
		return
	}

	if index == 0 {
		return
	}

	rf.values[index] = value

	for n, prior := range rf.recent {
		if prior == index {
			rf.recent = append(rf.recent[:n], rf.recent[n+1:]...)
			break
		}
	}
	rf.recent = append(rf.recent, index)
	if len(rf.recent) > REGISTER_COUNT {
		rf.recent = rf.recent[1:]
	}

	return
}

// Read returns the current value of the named register. Never-written
// registers and the zero register read as 0.
func (rf *RegisterFile) Read(name string) (value int32, err error) {
	index, ok := registerIndex[name]
	if !ok {
		err = ErrRegisterInvalid
		return
	}

	value = rf.values[index]
	return
}

// Snapshot returns up to max of the most-recently-written registers,
// most recent first. Read-only; does not affect recency.
func (rf *RegisterFile) Snapshot(max int) (rows []RegisterRow) {
	recent := rf.recent
	if len(recent) > max {
		recent = recent[len(recent)-max:]
	}

	for n := len(recent) - 1; n >= 0; n-- {
		index := recent[n]
		rows = append(rows, RegisterRow{
			Index: index,
			Name:  registerNames[index],
			Value: rf.values[index],
		})
	}

	return
}
