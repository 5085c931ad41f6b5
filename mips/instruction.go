package mips

import (
	"hash/crc32"
	"strings"
)

// Class is the structural class of an instruction. It selects the cycle
// weight charged by the clock and nothing else.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_R = Class(0) // R
	CLASS_I = Class(1) // I
	CLASS_J = Class(2) // J
)

// Instruction is a decoded instruction entry. Immutable once loaded.
type Instruction struct {
	Text   string   // Raw instruction text.
	Op     string   // Lowercased operation mnemonic.
	Args   []string // Ordered operand strings, commas stripped.
	Class  Class    // Structural class (R, I, or J).
	Code32 uint32   // Synthetic 32-bit code for display only.
}

// Decode classifies raw instruction text into an operation mnemonic, an
// operand list, and an instruction class.
func Decode(text string) (inst Instruction) {
	fields := strings.Fields(strings.ReplaceAll(text, ",", " "))

	inst = Instruction{
		Text:   text,
		Code32: crc32.ChecksumIEEE([]byte(text)),
		Class:  CLASS_I,
	}

	if len(fields) == 0 {
		return
	}

	inst.Op = strings.ToLower(fields[0])
	inst.Args = fields[1:]

	switch inst.Op {
	case "j", "jal":
		inst.Class = CLASS_J
	case "add", "sub", "and", "or":
		inst.Class = CLASS_R
	}

	return
}
