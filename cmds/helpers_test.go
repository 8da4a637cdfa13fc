package cmds

import (
	"fmt"
	"testing"
)

func TestVar(t *testing.T) {
	memory := Var[int]("TestVar-memory")
	dialect := Var[string]("TestVar-dialect")
	GlobalExecutor.MustExecute([]string{
		"TestVar-memory", "16",
		"TestVar-dialect", "corrected",
	})
	if *memory != 16 {
		t.Fatal()
	}
	if *dialect != "corrected" {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"TestVar-memory.",
	})
	if *memory != 0 {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	console := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if !*console {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *console {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "+",
		"TestCollect", "-",
	})
	if str := fmt.Sprintf("%v", *list); str != "[+ -]" {
		t.Fatalf("got %s", str)
	}
	GlobalExecutor.MustExecute([]string{
		"TestCollect.",
		"TestCollect", "?",
	})
	if str := fmt.Sprintf("%v", *list); str != "[?]" {
		t.Fatalf("got %s", str)
	}
}

func TestHelperParams(t *testing.T) {
	type Dialect string
	Var[int]("TestHelperParams-memory")
	Var[Dialect]("TestHelperParams-dialect")
	Collect[string]("TestHelperParams-query")
	Switch("TestHelperParams-c")
	for name, want := range map[string]string{
		"TestHelperParams-memory":  "N",
		"TestHelperParams-dialect": "DIALECT",
		"TestHelperParams-query":   "STRING...",
		"TestHelperParams-c":       "",
	} {
		if got := GlobalExecutor.commands[name].Param; got != want {
			t.Fatalf("%s: got %q", name, got)
		}
	}
	for _, name := range []string{
		"TestHelperParams-memory.",
		"TestHelperParams-query.",
		"!TestHelperParams-c",
	} {
		if !GlobalExecutor.commands[name].Hidden {
			t.Fatalf("%s not hidden", name)
		}
	}
}

func TestTypedVar(t *testing.T) {
	type Program string
	v := Var[Program]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "+++[?-]",
	})
	if *v != "+++[?-]" {
		t.Fatal()
	}
}
