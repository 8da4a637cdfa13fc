package cmds

import (
	"fmt"
	"reflect"
)

type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	// Param names the argument in usage lines, as in "-frame N".
	Param string
	// Hidden commands run but are left out of usage.
	Hidden bool
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func (c *Command) Arg(param string) *Command {
	c.Param = param
	return c
}

func (c *Command) Hide() *Command {
	c.Hidden = true
	return c
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if err := checkFunc(fnValue); err != nil {
		panic(fmt.Errorf("%w, got %T", err, fn))
	}
	return &Command{
		Func: fnValue,
	}
}

func checkFunc(fn reflect.Value) error {
	if fn.Kind() != reflect.Func {
		return fmt.Errorf("must be function")
	}
	switch t := fn.Type(); t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) != errorType {
			return fmt.Errorf("must return error")
		}
	default:
		return fmt.Errorf("must return 0 or 1 value")
	}
	return nil
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
