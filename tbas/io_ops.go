package tbas

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const tbasOperators = "+-<>[]=?"

func (c *Context) runOperation(ctx context.Context) (noop bool, msg string, err error) {
	if !c.IOMode.Valid() {
		return false, "", fmt.Errorf("%w: %d", ErrUnknownIOMode, c.IOMode)
	}
	if c.DeadLoop > 0 {
		return true, msgDeadLoop, nil
	}
	c.logger().DebugContext(ctx, "run operation", "command", c.IOMode.String())

	interp := c.interpreter
	cell := c.Memory.Cell()

	switch c.IOMode {

	case ModeConsoleDecimalWrite:
		return c.write(ctx, "console", interp.Console, strconv.Itoa(int(cell)))
	case ModeConsoleDecimalRead:
		return c.read(ctx, "console", interp.Console, parseDecimal)
	case ModeConsoleASCIIWrite:
		return c.write(ctx, "console", interp.Console, string(rune(cell)))
	case ModeConsoleASCIIRead:
		return c.read(ctx, "console", interp.Console, parseASCII)
	case ModeModemASCIIWrite:
		return c.write(ctx, "modem", interp.Modem, string(rune(cell)))
	case ModeModemASCIIRead:
		return c.read(ctx, "modem", interp.Modem, parseASCII)

	case ModeBufferProgram:
		c.Memory.Buffer = []byte(c.Program)

	case ModeExecuteTask:
		return false, "", c.executeTask(ctx)

	case ModeBufferEnqueue:
		c.logger().DebugContext(ctx, "store", "value", cell)
		c.Memory.Enqueue(cell)

	case ModeBufferDequeueLIFO:
		v, ok := c.Memory.DequeueLIFO()
		c.Memory.SetCell(v)
		return c.dequeued(ctx, v, ok)

	case ModeBufferDequeueFIFO:
		v, ok := c.Memory.DequeueFIFO()
		c.Memory.SetCell(v)
		return c.dequeued(ctx, v, ok)

	case ModeBufferClear:
		c.Memory.Clear()

	case ModeConvertLowerCase:
		if cell < 26 {
			c.Memory.SetCell(cell + 'a')
		}
	case ModeConvertUpperCase:
		if cell < 26 {
			c.Memory.SetCell(cell + 'A')
		}
	case ModeConvertDecimal:
		if cell < 10 {
			c.Memory.SetCell(cell + '0')
		}
	case ModeConvertTBAS:
		if int(cell) < len(tbasOperators) {
			c.Memory.SetCell(tbasOperators[cell])
		}

	case ModeALUAdd, ModeALUSub, ModeALUMul, ModeALUDiv,
		ModeALUAnd, ModeALUOr, ModeALUXor:
		return c.alu(ctx, c.IOMode)
	case ModeALUNot:
		if cell == 0 {
			c.Memory.SetCell(1)
		} else {
			c.Memory.SetCell(0)
		}

	case ModeGetMPtr:
		c.Memory.SetCell(byte(c.Memory.Pointer))
	case ModeGetEPtr:
		c.Memory.SetCell(byte(c.EPtr + 1))

	case ModeJumpLeft:
		return false, "", c.jump(-1)
	case ModeJumpRight:
		return false, "", c.jump(1)

	}

	return false, "", nil
}

func (c *Context) write(ctx context.Context, name string, port Port, s string) (bool, string, error) {
	if port.Write == nil {
		return true, name + " write port absent", nil
	}
	c.logger().DebugContext(ctx, "write", "port", name, "value", s)
	if err := port.Write(ctx, s); err != nil {
		return false, "", fmt.Errorf("%w: %s write: %w", ErrPort, name, err)
	}
	return false, "", nil
}

func (c *Context) read(ctx context.Context, name string, port Port, parse func(string) (byte, error)) (bool, string, error) {
	if port.Read == nil {
		return true, name + " read port absent", nil
	}
	s, err := port.Read(ctx, 1)
	if err != nil {
		return false, "", fmt.Errorf("%w: %s read: %w", ErrPort, name, err)
	}
	c.logger().DebugContext(ctx, "read", "port", name, "value", s)
	v, err := parse(s)
	if err != nil {
		return false, "", err
	}
	c.Memory.SetCell(v)
	return false, "", nil
}

func parseDecimal(s string) (byte, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not decimal", ErrBadInput, s)
	}
	return byte((n%256 + 256) % 256), nil
}

func parseASCII(s string) (byte, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return 0, fmt.Errorf("%w: empty input", ErrBadInput)
	}
	return byte(r % 256), nil
}

func (c *Context) dequeued(ctx context.Context, v byte, ok bool) (bool, string, error) {
	if !ok {
		c.logger().DebugContext(ctx, "no dequeue")
		return true, msgNoDequeue, nil
	}
	c.logger().DebugContext(ctx, "dequeue", "value", v)
	return false, "", nil
}

func (c *Context) alu(ctx context.Context, mode IOMode) (noop bool, msg string, err error) {
	cell := int(c.Memory.Cell())
	q, ok := c.Memory.DequeueFIFO()
	if !ok {
		c.logger().DebugContext(ctx, "no dequeue")
		noop, msg = true, msgNoDequeue
	}
	ret, keep, err := c.interpreter.Dialect.alu(mode, cell, int(q))
	if err != nil {
		return false, "", err
	}
	if !keep {
		c.Memory.SetCell(byte(ret))
	}
	return noop, msg, nil
}

func (c *Context) jump(direction int) error {
	distance := c.interpreter.Dialect.jumpDistance(len(c.Program), int(c.Memory.Cell()))
	if distance == 0 {
		// a zero jump advances like any other operation
		return nil
	}
	target := c.EPtr + direction*distance
	if target < 0 {
		return fmt.Errorf("%w: %d", ErrJumpOutOfRange, target)
	}
	c.setGoto(target)
	return nil
}

func (c *Context) executeTask(ctx context.Context) error {
	task := Task(c.Memory.Cell())
	if !task.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTask, task)
	}
	payload := c.Memory.Drain()
	c.logger().DebugContext(ctx, "execute task", "task", task.String())
	device := c.interpreter.Device
	if device == nil {
		c.logger().InfoContext(ctx, "task",
			"task", task.String(),
			"payload", string(payload),
		)
		return nil
	}
	if err := device.Exec(ctx, task, payload); err != nil {
		return fmt.Errorf("task %s: %w", task, err)
	}
	return nil
}
