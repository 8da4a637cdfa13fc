package storages

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tbas/modes"
	"github.com/reusee/tbas/tbas"
	"github.com/reusee/tbas/tbasconfigs"
)

func testContext(t *testing.T, program string) *tbas.Context {
	t.Helper()
	interp := &tbas.Interpreter{
		MemorySize: 4,
	}
	return interp.Run(context.Background(), program)
}

func TestFrameCodec(t *testing.T) {
	c := testContext(t, "+[-]")
	for _, frame := range c.Frames {
		data, err := MarshalFrame(frame)
		if err != nil {
			t.Fatal(err)
		}
		again, err := MarshalFrame(frame)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != string(again) {
			t.Fatal("encoding not deterministic")
		}
		decoded, err := UnmarshalFrame(data)
		if err != nil {
			t.Fatal(err)
		}
		if decoded.FormatCells("%d") != frame.FormatCells("%d") ||
			decoded.EPtr != frame.EPtr ||
			decoded.Operator != frame.Operator ||
			decoded.Noop != frame.Noop ||
			decoded.Msg != frame.Msg ||
			decoded.LoopDepth() != frame.LoopDepth() {
			t.Fatalf("got %+v, want %+v", decoded, frame)
		}
		if (decoded.Goto == nil) != (frame.Goto == nil) {
			t.Fatal()
		}
		if frame.Goto != nil && *decoded.Goto != *frame.Goto {
			t.Fatal()
		}
	}

	if _, err := UnmarshalFrame([]byte{0xff}); err == nil {
		t.Fatal()
	}
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	store, err := Open(filepath.Join(t.TempDir(), "trace.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	c := testContext(t, "++[->+<]")
	id, err := store.SaveRun(ctx, c, tbas.DialectCorrected)
	if err != nil {
		t.Fatal(err)
	}

	run, err := store.LoadRun(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if run.Program != c.Program || run.Dialect != "corrected" || run.Error != "" {
		t.Fatalf("got %+v", run.RunInfo)
	}
	if run.NumFrames != len(c.Frames) || len(run.Frames) != len(c.Frames) {
		t.Fatalf("got %d frames", len(run.Frames))
	}
	last := run.Frames[len(run.Frames)-1]
	if last.FormatCells("%d") != "0 2 0 0" {
		t.Fatalf("got %s", last.FormatCells("%d"))
	}

	failed := testContext(t, "]")
	id2, err := store.SaveRun(ctx, failed, tbas.DialectReference)
	if err != nil {
		t.Fatal(err)
	}
	infos, err := store.Runs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 2 || infos[0].ID != id2 || infos[0].Error == "" {
		t.Fatalf("got %+v", infos)
	}
	run, err = store.LoadRun(ctx, id2)
	if err != nil {
		t.Fatal(err)
	}
	if !run.Frames[0].Fault {
		t.Fatal()
	}

	if _, err := store.LoadRun(ctx, 42); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.db")
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() tbasconfigs.TraceDB {
			return tbasconfigs.TraceDB(path)
		},
	).Call(func(
		trace Trace,
	) {
		ctx := context.Background()
		c := testContext(t, "+++")
		id, err := trace(ctx, c, tbas.DialectReference)
		if err != nil {
			t.Fatal(err)
		}
		store, err := Open(path)
		if err != nil {
			t.Fatal(err)
		}
		defer store.Close()
		run, err := store.LoadRun(ctx, id)
		if err != nil {
			t.Fatal(err)
		}
		if len(run.Frames) != 3 {
			t.Fatalf("got %d", len(run.Frames))
		}
	})
}

func TestTraceDisabled(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		trace Trace,
	) {
		id, err := trace(context.Background(), testContext(t, "+"), tbas.DialectReference)
		if err != nil {
			t.Fatal(err)
		}
		if id != 0 {
			t.Fatal()
		}
	})
}
