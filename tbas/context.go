package tbas

import (
	"context"
	"fmt"
	"log/slog"
)

const (
	msgDeadLoop      = "in dead loop"
	msgBeginDeadLoop = "begin loop in dead loop"
	msgEndDeadLoop   = "ended dead loop"
	msgNoDequeue     = "no dequeue"
)

// Context is the state of one program run.
type Context struct {
	Program  string
	Memory   Memory
	IOMode   IOMode
	DeadLoop int
	LoopRef  []int
	EPtr     int
	Operator Op
	Frames   []Frame
	Steps    int
	Err      error

	gotoTarget int
	hasGoto    bool

	interpreter *Interpreter
}

func NewContext(program string, interpreter *Interpreter) *Context {
	if interpreter == nil {
		interpreter = new(Interpreter)
	}
	c := &Context{
		Program:     program,
		interpreter: interpreter,
	}
	c.Reset()
	return c
}

func (c *Context) Reset() {
	c.Memory = NewMemory(c.interpreter.MemorySize)
	c.IOMode = 0
	c.DeadLoop = 0
	c.LoopRef = []int{}
	c.EPtr = 0
	c.Operator = 0
	c.Frames = nil
	c.Steps = 0
	c.Err = nil
	c.gotoTarget = 0
	c.hasGoto = false
}

func (c *Context) NumInstructions() int {
	return len(c.Program)
}

func (c *Context) Done() bool {
	return c.Err != nil || c.EPtr >= len(c.Program)
}

func (c *Context) Failed() bool {
	return c.Err != nil
}

// Goto returns the pending jump target.
func (c *Context) Goto() (int, bool) {
	return c.gotoTarget, c.hasGoto
}

func (c *Context) setGoto(target int) {
	c.gotoTarget = target
	c.hasGoto = true
}

func (c *Context) logger() *slog.Logger {
	return c.interpreter.logger()
}

// Run steps until the end of the program or the first fault.
func (c *Context) Run(ctx context.Context) error {
	for !c.Done() {
		if err := ctx.Err(); err != nil {
			return c.fail(err)
		}
		if budget := c.interpreter.MaxSteps; budget > 0 && c.Steps >= budget {
			return c.fail(fmt.Errorf("%w: %d", ErrStepBudget, budget))
		}
		if err := c.Step(ctx); err != nil {
			return err
		}
	}
	return c.Err
}

func (c *Context) fail(err error) error {
	var op Op
	if c.EPtr >= 0 && c.EPtr < len(c.Program) {
		op = Op(c.Program[c.EPtr])
	}
	c.Err = &Fault{
		EPtr:     c.EPtr,
		Operator: op,
		Err:      err,
	}
	return c.Err
}

// Step executes the instruction at EPtr and records one frame.
func (c *Context) Step(ctx context.Context) error {
	if c.Done() {
		return c.Err
	}

	c.Operator = Op(c.Program[c.EPtr])
	c.logger().DebugContext(ctx, "eval",
		"operator", c.Operator.Char(),
		"mcell", c.Memory.Cell(),
		"l_iob", len(c.Memory.Buffer),
		"eptr", c.EPtr,
		"command", c.Operator.String(),
	)

	noop, msg, err := c.eval(ctx, c.Operator)
	if err != nil {
		c.fail(err)
		frame := c.snapshot(true, c.Err.Error())
		frame.Fault = true
		c.Frames = append(c.Frames, frame)
		return c.Err
	}
	c.Frames = append(c.Frames, c.snapshot(noop, msg))
	c.Steps++

	if c.hasGoto {
		c.EPtr = c.gotoTarget
		c.hasGoto = false
	} else {
		c.EPtr++
	}
	return nil
}

func (c *Context) eval(ctx context.Context, op Op) (noop bool, msg string, err error) {
	switch op {

	case OpAdvance:
		if c.DeadLoop > 0 {
			return true, msgDeadLoop, nil
		}
		if c.Memory.AtExtent() {
			return true, "mptr at extent", nil
		}
		c.Memory.Pointer++

	case OpRetreat:
		if c.DeadLoop > 0 {
			return true, msgDeadLoop, nil
		}
		if c.Memory.Pointer == 0 {
			return true, "mptr at zero", nil
		}
		c.Memory.Pointer--

	case OpIncrement:
		if c.DeadLoop > 0 {
			return true, msgDeadLoop, nil
		}
		if c.Memory.Cell() == 255 {
			return true, "mcell[] is max", nil
		}
		c.Memory.SetCell(c.Memory.Cell() + 1)

	case OpDecrement:
		if c.DeadLoop > 0 {
			return true, msgDeadLoop, nil
		}
		if c.Memory.Cell() == 0 {
			return true, "mcell[] is 0", nil
		}
		c.Memory.SetCell(c.Memory.Cell() - 1)

	case OpBeginLoop:
		c.LoopRef = append(c.LoopRef, c.EPtr)
		c.logger().DebugContext(ctx, "begin loop", "eptr", c.EPtr)
		if c.DeadLoop > 0 || c.Memory.Cell() == 0 {
			c.DeadLoop++
			return true, msgBeginDeadLoop, nil
		}

	case OpEndLoop:
		if len(c.LoopRef) == 0 {
			return false, "", ErrUnmatchedLoop
		}
		target := c.LoopRef[len(c.LoopRef)-1]
		c.LoopRef = c.LoopRef[:len(c.LoopRef)-1]
		if c.DeadLoop > 0 {
			c.DeadLoop--
			return true, msgEndDeadLoop, nil
		}
		c.setGoto(target)

	case OpSetMode:
		if c.DeadLoop > 0 {
			return true, msgDeadLoop, nil
		}
		c.IOMode = IOMode(c.Memory.Cell())

	case OpRun:
		return c.runOperation(ctx)

	default:
		return false, "", fmt.Errorf("%w: %q", ErrUnknownOperator, op.Char())
	}

	return false, "", nil
}
