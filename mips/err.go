package mips

import (
	"errors"

	"github.com/ezrec/mipsviz/translate"
)

var f = translate.From

var (
	// Program and configuration errors
	ErrMalformedProgram = errors.New(f("program has no instructions"))
	ErrInvalidConfig    = errors.New(f("config_cpu invalid"))
	ErrFrequencyMissing = errors.New(f("clock frequency missing"))
	ErrEquateSyntax     = errors.New(f(".equ syntax"))
	ErrEquateDuplicate  = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate   = errors.New(f("label duplicated"))

	// Machine errors
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrSizeMismatch    = errors.New(f("text length does not match size"))
	ErrSizeInvalid     = errors.New(f("size must be 1, 2 or 4"))
)

// ErrUndefinedLabel reports a jump, branch or address load naming a label
// the program never defines.
type ErrUndefinedLabel string

func (err ErrUndefinedLabel) Error() string {
	return f("label %v undefined", string(err))
}

func (err ErrUndefinedLabel) Is(target error) (ok bool) {
	_, ok = target.(ErrUndefinedLabel)
	return
}

// ErrOperandFormat reports operand text that does not match the shape an
// operation requires.
type ErrOperandFormat struct {
	Op      string
	Operand string
}

func (err ErrOperandFormat) Error() string {
	return f("%v operand '%v' invalid", err.Op, err.Operand)
}

func (err ErrOperandFormat) Is(target error) (ok bool) {
	_, ok = target.(ErrOperandFormat)
	return
}

// ErrMemoryBounds reports an access range that exits the data memory.
type ErrMemoryBounds struct {
	Addr int
	Size int
}

func (err ErrMemoryBounds) Error() string {
	return f("address %v size %v out of bounds", err.Addr, err.Size)
}

func (err ErrMemoryBounds) Is(target error) (ok bool) {
	_, ok = target.(ErrMemoryBounds)
	return
}

// ErrSyntax reports a source line the loader could not consume.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
