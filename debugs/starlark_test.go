package debugs

import (
	"testing"

	"github.com/reusee/tbas/tbas"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	target := 3
	type pair struct {
		Name   string
		hidden int
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte{1, 2}, starlark.Bytes("\x01\x02")},
		{"string", "msg", starlark.String("msg")},
		{"int", 42, starlark.MakeInt(42)},
		{"uint8", uint8(255), starlark.MakeInt(255)},
		{"float", 0.5, starlark.Float(0.5)},
		{"op", tbas.OpRun, starlark.String("?")},
		{"imode", tbas.ModeALUAdd, starlark.MakeInt(16)},
		{"ints", []int{1, 2}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(1), starlark.MakeInt(2),
		})},
		{"pointer", &target, starlark.MakeInt(3)},
		{"nil pointer", (*int)(nil), starlark.None},
		{"struct", pair{Name: "a", hidden: 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("Name"), starlark.String("a"))
			return d
		}()},
		{"map", map[string]any{"eptr": 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("eptr"), starlark.MakeInt(1))
			return d
		}()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Fatalf("got %v, want %v", actual, tc.expected)
			}
		})
	}

	t.Run("frame", func(t *testing.T) {
		v := toStarlarkValue(tbas.Frame{
			Cells:    []byte{7},
			Operator: tbas.OpIncrement,
			Goto:     &target,
		})
		d, ok := v.(*starlark.Dict)
		if !ok {
			t.Fatalf("got %T", v)
		}
		for key, want := range map[string]starlark.Value{
			"operator": starlark.String("+"),
			"mcell":    starlark.MakeInt(7),
			"goto":     starlark.MakeInt(3),
			"noop":     starlark.False,
		} {
			got, found, err := d.Get(starlark.String(key))
			if err != nil || !found {
				t.Fatalf("%s: missing", key)
			}
			if eq, _ := starlark.Equal(got, want); !eq {
				t.Fatalf("%s: got %v", key, got)
			}
		}
	})

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
