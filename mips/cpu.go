package mips

import (
	"errors"
	"log"
	"regexp"
	"strconv"
)

// Cpu is the execution engine: it drives the program store, register
// file, data memory and clock through one instruction per Step call.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc        uint32 // Byte offset into the program store, multiple of 4.
	Registers *RegisterFile
	Memory    *Memory
	Program   *Program
	Clock     *Clock

	Halted bool // Set when fetch passes the end of the program.
}

// NewCpu creates a CPU over a loaded program with a fresh register file.
func NewCpu(prog *Program, mem *Memory, clock *Clock) (cpu *Cpu) {
	cpu = &Cpu{
		Registers: &RegisterFile{},
		Memory:    mem,
		Program:   prog,
		Clock:     clock,
	}

	return
}

// Step executes a single instruction:
// fetch at Pc/4, advance Pc by 4, tick the clock for the instruction's
// class, then execute. Control-flow operations overwrite Pc again,
// superseding the advance. Returns done=true without executing anything
// once fetch passes the end of the program.
func (cpu *Cpu) Step() (done bool, err error) {
	inst, ok := cpu.Program.Fetch(int(cpu.Pc / 4))
	if !ok {
		cpu.Halted = true
		done = true
		return
	}

	if cpu.Verbose {
		log.Printf("%08x: %v", cpu.Pc, inst.Text)
	}

	// The Pc reflects "next instruction to fetch" before the operation
	// runs; taken jumps and branches replace it below.
	cpu.Pc += 4

	cpu.Clock.Advance(inst.Class)

	err = cpu.Execute(inst)

	return
}

var (
	numericPattern    = regexp.MustCompile(`^(-?0x[0-9a-fA-F]+|-?\d+)$`)
	offsetBasePattern = regexp.MustCompile(`^(-?0x[0-9a-fA-F]+|-?\d+)\((\$\w+)\)$`)
)

// Execute performs a single decoded instruction. Unrecognized mnemonics
// execute as no-ops that still consumed their cycle in Step. A failure
// leaves registers and memory untouched for this instruction.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	switch inst.Op {
	case "li":
		if len(inst.Args) != 2 {
			err = ErrOperandFormat{Op: inst.Op, Operand: inst.Text}
			return
		}
		var value int32
		value, err = parseImmediate(inst.Op, inst.Args[1])
		if err != nil {
			return
		}
		err = cpu.writeReg(inst.Op, inst.Args[0], value)

	case "la":
		if len(inst.Args) != 2 {
			err = ErrOperandFormat{Op: inst.Op, Operand: inst.Text}
			return
		}
		arg := inst.Args[1]
		var value int64
		if numericPattern.MatchString(arg) {
			value, err = strconv.ParseInt(arg, 0, 64)
			if err != nil {
				err = errors.Join(ErrOperandFormat{Op: inst.Op, Operand: arg}, err)
				return
			}
		} else {
			var index int
			index, err = cpu.Program.ResolveLabel(arg)
			if err != nil {
				return
			}
			value = int64(index * 4)
		}
		err = cpu.writeReg(inst.Op, inst.Args[0], int32(value))

	case "add":
		err = cpu.binaryOp(inst, func(a, b int32) int32 { return a + b })

	case "sub":
		err = cpu.binaryOp(inst, func(a, b int32) int32 { return a - b })

	case "and":
		err = cpu.binaryOp(inst, func(a, b int32) int32 { return a & b })

	case "or":
		err = cpu.binaryOp(inst, func(a, b int32) int32 { return a | b })

	case "addi":
		if len(inst.Args) != 3 {
			err = ErrOperandFormat{Op: inst.Op, Operand: inst.Text}
			return
		}
		var base int32
		base, err = cpu.readReg(inst.Op, inst.Args[1])
		if err != nil {
			return
		}
		var imm int32
		imm, err = parseImmediate(inst.Op, inst.Args[2])
		if err != nil {
			return
		}
		err = cpu.writeReg(inst.Op, inst.Args[0], base+imm)

	case "j", "jal":
		if len(inst.Args) != 1 {
			err = ErrOperandFormat{Op: inst.Op, Operand: inst.Text}
			return
		}
		err = cpu.jump(inst.Args[0])

	case "beq":
		if len(inst.Args) != 3 {
			err = ErrOperandFormat{Op: inst.Op, Operand: inst.Text}
			return
		}
		var a, b int32
		a, err = cpu.readReg(inst.Op, inst.Args[0])
		if err != nil {
			return
		}
		b, err = cpu.readReg(inst.Op, inst.Args[1])
		if err != nil {
			return
		}
		// Resolve before comparing so an undefined label always fails.
		var index int
		index, err = cpu.Program.ResolveLabel(inst.Args[2])
		if err != nil {
			return
		}
		if a == b {
			cpu.Pc = uint32(index * 4)
		}

	case "sw":
		err = cpu.store(inst, 4, 0xffffffff)

	case "sb":
		err = cpu.store(inst, 1, 0xff)

	default:
		// Unrecognized mnemonics are timed no-ops.
		if cpu.Verbose {
			log.Printf("no-op: %v", inst.Text)
		}
	}

	return
}

// binaryOp executes an R-type three-register operation.
func (cpu *Cpu) binaryOp(inst Instruction, op func(a, b int32) int32) (err error) {
	if len(inst.Args) != 3 {
		err = ErrOperandFormat{Op: inst.Op, Operand: inst.Text}
		return
	}

	a, err := cpu.readReg(inst.Op, inst.Args[1])
	if err != nil {
		return
	}
	b, err := cpu.readReg(inst.Op, inst.Args[2])
	if err != nil {
		return
	}

	err = cpu.writeReg(inst.Op, inst.Args[0], op(a, b))
	return
}

// store executes sw/sb: address = read(base) + offset, then a masked
// integer write of the given size.
func (cpu *Cpu) store(inst Instruction, size int, mask uint32) (err error) {
	if len(inst.Args) != 2 {
		err = ErrOperandFormat{Op: inst.Op, Operand: inst.Text}
		return
	}

	m := offsetBasePattern.FindStringSubmatch(inst.Args[1])
	if m == nil {
		err = ErrOperandFormat{Op: inst.Op, Operand: inst.Args[1]}
		return
	}

	offset, err := strconv.ParseInt(m[1], 0, 64)
	if err != nil {
		err = errors.Join(ErrOperandFormat{Op: inst.Op, Operand: m[1]}, err)
		return
	}

	base, err := cpu.readReg(inst.Op, m[2])
	if err != nil {
		return
	}

	value, err := cpu.readReg(inst.Op, inst.Args[0])
	if err != nil {
		return
	}

	addr := int(base) + int(offset)
	err = cpu.Memory.WriteInt(addr, int64(uint32(value)&mask), size)

	return
}

// jump replaces the Pc with a label's byte address.
func (cpu *Cpu) jump(label string) (err error) {
	index, err := cpu.Program.ResolveLabel(label)
	if err != nil {
		return
	}

	cpu.Pc = uint32(index * 4)
	return
}

// readReg reads a register named by an operand.
func (cpu *Cpu) readReg(op, name string) (value int32, err error) {
	value, err = cpu.Registers.Read(name)
	if err != nil {
		err = errors.Join(ErrOperandFormat{Op: op, Operand: name}, err)
	}
	return
}

// writeReg writes a register named by an operand.
func (cpu *Cpu) writeReg(op, name string, value int32) (err error) {
	err = cpu.Registers.Write(name, value)
	if err != nil {
		err = errors.Join(ErrOperandFormat{Op: op, Operand: name}, err)
	}
	return
}

// parseImmediate parses either a single quoted character ('a' yields its
// code point) or an integer literal in any base prefix the integer
// parser accepts. The result wraps to 32-bit two's-complement.
func parseImmediate(op, text string) (value int32, err error) {
	if len(text) >= 3 && text[0] == '\'' && text[len(text)-1] == '\'' {
		runes := []rune(text[1 : len(text)-1])
		if len(runes) != 1 {
			err = ErrOperandFormat{Op: op, Operand: text}
			return
		}
		value = int32(runes[0])
		return
	}

	v64, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		err = errors.Join(ErrOperandFormat{Op: op, Operand: text}, ErrParseNumber(text))
		return
	}

	value = int32(v64)
	return
}
