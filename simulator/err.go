package simulator

import (
	"github.com/ezrec/mipsviz/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a failed instruction.
type ErrRuntime struct {
	Pc   uint32
	Text string
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%08X '%v' %v", err.Pc, err.Text, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
