package debugs

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tbas/modes"
	"github.com/reusee/tbas/tbas"
	"go.starlark.net/starlark"
	"gopkg.in/yaml.v3"
)

func TestQuery(t *testing.T) {
	c := (&tbas.Interpreter{MemorySize: 4}).Run(context.Background(), "+++[->+<]")
	if c.Err != nil {
		t.Fatal(c.Err)
	}

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		query Query,
	) {
		ctx := context.Background()
		for expr, want := range map[string]starlark.Value{
			"len(frames)":                             starlark.MakeInt(len(c.Frames)),
			"frames[-1]['mptr']":                      starlark.MakeInt(0),
			"cells[1]":                                starlark.MakeInt(3),
			"cells[1] + frames[0]['cells'][0]":        starlark.MakeInt(4),
			"type(frames[-1]['cells'][1])":            starlark.String("int"),
			"len(buffer)":                             starlark.MakeInt(0),
			"len([f for f in frames if f['noop']])":   starlark.MakeInt(6),
			"frames[0]['operator']":                   starlark.String("+"),
			"error":                                   starlark.None,
			"format_cells(-1, '%03d')":                starlark.String("000 003 000 000"),
			"max([f['mcell'] for f in frames])":       starlark.MakeInt(3),
		} {
			got, err := query(ctx, c, expr)
			if err != nil {
				t.Fatal(err)
			}
			if eq, err := starlark.Equal(got, want); err != nil || !eq {
				t.Fatalf("%s: got %v, want %v", expr, got, want)
			}
		}

		if _, err := query(ctx, c, "frames["); err == nil {
			t.Fatal()
		}
		if _, err := query(ctx, c, "undefined_name"); err == nil {
			t.Fatal()
		}
	})
}

func TestQueryCanceled(t *testing.T) {
	c := new(tbas.Interpreter).Run(context.Background(), "+")
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		query Query,
	) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := query(ctx, c, "[x for x in range(100000000) if False]"); err == nil {
			t.Fatal()
		}
	})
}

func TestDumpFrames(t *testing.T) {
	c := (&tbas.Interpreter{MemorySize: 2}).Run(context.Background(), "+[-]")
	buf := new(bytes.Buffer)
	if err := DumpFrames(buf, c.Frames); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "command: begin_loop") {
		t.Fatalf("got %s", out)
	}

	var decoded []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != len(c.Frames) {
		t.Fatalf("got %d", len(decoded))
	}
	if decoded[3]["goto"] != 1 {
		t.Fatalf("got %v", decoded[3]["goto"])
	}
	if decoded[0]["operator"] != "+" {
		t.Fatalf("got %v", decoded[0]["operator"])
	}
}
