package tbas

import (
	"errors"
	"fmt"
)

var (
	ErrUnmatchedLoop   = errors.New("] without matching [")
	ErrUnknownIOMode   = errors.New("unknown IO mode")
	ErrUnknownTask     = errors.New("unknown task")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrALUResult       = errors.New("ALU result is not a cell value")
	ErrJumpOutOfRange  = errors.New("jump target out of range")
	ErrBadInput        = errors.New("bad input")
	ErrPort            = errors.New("port error")
	ErrStepBudget      = errors.New("step budget exhausted")
)

// Fault is a terminal run error located at an instruction.
type Fault struct {
	EPtr     int
	Operator Op
	Err      error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault at %d %q: %v", f.EPtr, f.Operator.Char(), f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
