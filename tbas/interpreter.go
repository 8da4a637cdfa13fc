package tbas

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/reusee/tbas/logs"
	"github.com/reusee/tbas/syncs"
)

// Interpreter holds the ports shared by all runs and creates one Context per run.
type Interpreter struct {
	Console    Port
	Modem      Port
	Device     Device
	Logger     logs.Logger
	NewSpan    logs.NewSpan
	MemorySize int
	MaxSteps   int
	Dialect    Dialect

	runs     atomic.Int64
	initOnce sync.Once
	running  syncs.Semaphore
}

func (i *Interpreter) logger() *slog.Logger {
	if i.Logger == nil {
		return slog.Default()
	}
	return i.Logger
}

// Runs returns the number of runs that completed without a fault.
func (i *Interpreter) Runs() int64 {
	return i.runs.Load()
}

// Run executes program in a fresh Context. It never fails: faults are
// logged and reported by the returned Context.
func (i *Interpreter) Run(ctx context.Context, program string) *Context {
	i.initOnce.Do(func() {
		i.running = syncs.NewSemaphore(1)
	})
	if i.NewSpan != nil {
		ctx, _ = i.NewSpan(ctx, "")
	}
	c := NewContext(program, i)

	if err := i.running.AcquireContext(ctx); err != nil {
		i.failed(ctx, c, c.fail(err))
		return c
	}
	defer i.running.Release()

	logger := i.logger()
	logger.InfoContext(ctx, "run",
		"instructions", len(program),
		"dialect", i.Dialect.String(),
	)
	logger.DebugContext(ctx, "source", "program", program)

	if err := c.Run(ctx); err != nil {
		i.failed(ctx, c, err)
		return c
	}

	n := i.runs.Add(1)
	logger.InfoContext(ctx, "run completed",
		"runs", n,
		"frames", len(c.Frames),
	)
	return c
}

func (i *Interpreter) failed(ctx context.Context, c *Context, err error) {
	c.Err = logs.WrapSpan(ctx, err)
	i.logger().ErrorContext(ctx, "run failed",
		"error", err,
		"eptr", c.EPtr,
		"frames", len(c.Frames),
	)
}
