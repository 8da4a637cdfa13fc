package ports

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/reusee/tbas/tbas"
)

// Capture is an in-memory port with scripted input and recorded output.
type Capture struct {
	mu     sync.Mutex
	input  []string
	writes []string
}

func NewCapture(input ...string) *Capture {
	return &Capture{
		input: input,
	}
}

// Feed appends input units. Each read consumes one unit.
func (c *Capture) Feed(input ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = append(c.input, input...)
}

func (c *Capture) Writes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.writes...)
}

func (c *Capture) Output() string {
	return strings.Join(c.Writes(), "")
}

func (c *Capture) Port() tbas.Port {
	return tbas.Port{
		Read:  c.read,
		Write: c.write,
	}
}

func (c *Capture) read(ctx context.Context, n int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.input) == 0 {
		return "", io.EOF
	}
	s := c.input[0]
	c.input = c.input[1:]
	return s, nil
}

func (c *Capture) write(ctx context.Context, s string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes = append(c.writes, s)
	return nil
}
