package devices

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tbas/modes"
	"github.com/reusee/tbas/tbas"
)

func TestParseBlinken(t *testing.T) {
	b := ParseBlinken([]byte{1, 2, 3})
	if b.Part != 1 || b.Pos != 2 || b.Mask != 3 {
		t.Fatalf("got %+v", b)
	}
	if b.Vel != 0 || b.LFODelay != 0 {
		t.Fatalf("got %+v", b)
	}
}

func TestParseScroller(t *testing.T) {
	s := ParseScroller([]byte("\x01\x02\x03hello"))
	if s.PingPong != 1 || s.Steps != 2 || s.Blanks != 3 || s.Message != "hello" {
		t.Fatalf("got %+v", s)
	}
	s = ParseScroller(nil)
	if s.Message != "" || s.Steps != 0 {
		t.Fatalf("got %+v", s)
	}
}

func TestParseWarDialer(t *testing.T) {
	w := ParseWarDialer([]byte("\x05shall we play a game"))
	if w.Number != 5 || w.Speech != "shall we play a game" {
		t.Fatalf("got %+v", w)
	}
}

func TestDevice(t *testing.T) {
	buf := new(bytes.Buffer)
	device := &Device{
		logger: slog.New(slog.NewTextHandler(buf, nil)),
	}
	ctx := context.Background()

	if err := device.Exec(ctx, tbas.TaskScroller, []byte("\x01\x00\x02hi")); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "msg=scroller") ||
		!strings.Contains(out, "message=hi") ||
		!strings.Contains(out, "blanks=2") {
		t.Fatalf("got %s", out)
	}

	buf.Reset()
	if err := device.Exec(ctx, tbas.TaskBox, []byte("lid")); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "msg=box") || !strings.Contains(out, "text=lid") {
		t.Fatalf("got %s", out)
	}
}

func TestModule(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		device tbas.Device,
	) {
		if err := device.Exec(context.Background(), tbas.TaskBlinken, []byte{1}); err != nil {
			t.Fatal(err)
		}
	})
}
