package tbas_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tbas/modes"
	"github.com/reusee/tbas/ports"
	"github.com/reusee/tbas/tbas"
)

func TestModule(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(tbas.Module),
		func() tbas.Device {
			return nil
		},
	).Call(func(
		newInterpreter tbas.NewInterpreter,
	) {
		console := ports.NewCapture()
		interp := newInterpreter(console.Port(), tbas.Port{})
		if interp.MemorySize != tbas.DefaultMemorySize {
			t.Fatalf("got %d", interp.MemorySize)
		}
		if interp.Dialect != tbas.DialectReference {
			t.Fatal()
		}
		c := interp.Run(context.Background(), "+++[?-]")
		if c.Err != nil {
			t.Fatal(c.Err)
		}
		if console.Output() != "321" {
			t.Fatalf("got %q", console.Output())
		}
	})
}

func TestConcurrentRuns(t *testing.T) {
	console := ports.NewCapture()
	interp := &tbas.Interpreter{
		Console: console.Port(),
	}
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			interp.Run(context.Background(), "+++[?-]")
		}()
	}
	wg.Wait()
	if interp.Runs() != 8 {
		t.Fatalf("got %d", interp.Runs())
	}
	// runs are serialized so outputs never interleave
	want := ""
	for range 8 {
		want += "321"
	}
	if console.Output() != want {
		t.Fatalf("got %q", console.Output())
	}
}

func TestNames(t *testing.T) {
	if tbas.OpRun.String() != "run_operation" || !tbas.OpRun.Valid() {
		t.Fatal()
	}
	if tbas.Op('x').Valid() {
		t.Fatal()
	}
	if tbas.ModeBufferDequeueLIFO.String() != "buffer_dequeue_filo" {
		t.Fatalf("got %s", tbas.ModeBufferDequeueLIFO)
	}
	if tbas.IOMode(28).Valid() {
		t.Fatal()
	}
	if tbas.TaskWarDialer.String() != "war_dialer" || tbas.Task(9).Valid() {
		t.Fatal()
	}
}

func TestRunWaitCanceled(t *testing.T) {
	entered := make(chan struct{})
	unblock := make(chan struct{})
	logs := new(syncBuffer)
	interp := &tbas.Interpreter{
		Logger: slog.New(slog.NewTextHandler(logs, nil)),
		Console: tbas.Port{
			Read: func(ctx context.Context, n int) (string, error) {
				close(entered)
				<-unblock
				return "1", nil
			},
		},
	}

	done := make(chan *tbas.Context)
	go func() {
		done <- interp.Run(context.Background(), "+=?")
	}()
	<-entered

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := interp.Run(ctx, "+")
	if !errors.Is(c.Err, context.Canceled) {
		t.Fatalf("got %v", c.Err)
	}
	if len(c.Frames) != 0 {
		t.Fatalf("got %d frames", len(c.Frames))
	}
	if !strings.Contains(logs.String(), "run failed") {
		t.Fatalf("got %s", logs.String())
	}

	close(unblock)
	if first := <-done; first.Err != nil {
		t.Fatal(first.Err)
	}
	if interp.Runs() != 1 {
		t.Fatalf("got %d", interp.Runs())
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}
