package cmds

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("trace", Sub(map[string]*Command{
		"list": Func(func() {
		}).Desc("LIST"),
		"show": Sub(map[string]*Command{
			"frame": Func(func() {}).Desc("FRAME"),
		}).Desc("SHOW"),
	}).Desc("TRACE"))

	buf := new(strings.Builder)
	executor.PrintUsage(buf)
	out := buf.String()
	for _, want := range []string{
		"-h (help, -help, --help)\tprint this usage",
		"trace\tTRACE",
		"  list\tLIST",
		"  show\tSHOW",
		"    frame\tFRAME",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Count(out, "print this usage") != 1 {
		t.Fatalf("aliases printed twice:\n%s", out)
	}
}

func TestUsageParams(t *testing.T) {
	executor := NewExecutor()
	var frames []int
	executor.Define("-frame", Func(func(i int) {
		frames = append(frames, i)
	}).Arg("N").Desc("print frame N"))
	executor.Define("-frame.", Func(func() {
		frames = nil
	}).Hide())

	buf := new(strings.Builder)
	executor.PrintUsage(buf)
	out := buf.String()
	if !strings.Contains(out, "-frame N\tprint frame N") {
		t.Fatalf("got:\n%s", out)
	}
	if strings.Contains(out, "-frame.") {
		t.Fatalf("hidden command printed:\n%s", out)
	}

	executor.MustExecute([]string{"-frame", "3", "-frame.", "-frame", "4"})
	if len(frames) != 1 || frames[0] != 4 {
		t.Fatalf("got %v", frames)
	}
}
