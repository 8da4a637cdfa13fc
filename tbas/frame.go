package tbas

import (
	"fmt"
	"strings"
)

// Frame is a copy of the machine state taken after one instruction.
type Frame struct {
	Cells    []byte `json:"cells" yaml:"cells" cbor:"1,keyasint"`
	MPtr     int    `json:"mptr" yaml:"mptr" cbor:"2,keyasint"`
	Buffer   []byte `json:"buffer" yaml:"buffer" cbor:"3,keyasint"`
	IOMode   IOMode `json:"imode" yaml:"imode" cbor:"4,keyasint"`
	DeadLoop int    `json:"in_dead_loop" yaml:"in_dead_loop" cbor:"5,keyasint"`
	LoopRef  []int  `json:"loop_ref" yaml:"loop_ref" cbor:"6,keyasint"`
	EPtr     int    `json:"eptr" yaml:"eptr" cbor:"7,keyasint"`
	Operator Op     `json:"operator" yaml:"operator" cbor:"8,keyasint"`
	Goto     *int   `json:"goto,omitempty" yaml:"goto,omitempty" cbor:"9,keyasint,omitempty"`
	Noop     bool   `json:"noop,omitempty" yaml:"noop,omitempty" cbor:"10,keyasint,omitempty"`
	Msg      string `json:"msg,omitempty" yaml:"msg,omitempty" cbor:"11,keyasint,omitempty"`
	Fault    bool   `json:"fault,omitempty" yaml:"fault,omitempty" cbor:"12,keyasint,omitempty"`
}

func (c *Context) snapshot(noop bool, msg string) Frame {
	frame := Frame{
		Cells:    append([]byte(nil), c.Memory.Cells...),
		MPtr:     c.Memory.Pointer,
		Buffer:   append([]byte{}, c.Memory.Buffer...),
		IOMode:   c.IOMode,
		DeadLoop: c.DeadLoop,
		LoopRef:  append([]int{}, c.LoopRef...),
		EPtr:     c.EPtr,
		Operator: c.Operator,
		Noop:     noop,
		Msg:      msg,
	}
	if c.hasGoto {
		target := c.gotoTarget
		frame.Goto = &target
	}
	return frame
}

func (f Frame) BufferLen() int {
	return len(f.Buffer)
}

func (f Frame) LoopDepth() int {
	return len(f.LoopRef)
}

// LoopPtr returns the innermost open loop position.
func (f Frame) LoopPtr() (int, bool) {
	if len(f.LoopRef) == 0 {
		return 0, false
	}
	return f.LoopRef[len(f.LoopRef)-1], true
}

// FormatCells renders every cell with the fmt verb, separated by spaces.
func (f Frame) FormatCells(format string) string {
	parts := make([]string, len(f.Cells))
	for i, v := range f.Cells {
		parts[i] = fmt.Sprintf(format, v)
	}
	return strings.Join(parts, " ")
}

func (f Frame) FormatBuffer(format string) string {
	parts := make([]string, len(f.Buffer))
	for i, v := range f.Buffer {
		parts[i] = fmt.Sprintf(format, v)
	}
	return strings.Join(parts, " ")
}
