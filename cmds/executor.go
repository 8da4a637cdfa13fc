package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/reusee/tbas/vars"
)

type Executor struct {
	commands map[string]*Command
	fallback *Command
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}

	usage := Func(func() {
		ret.PrintUsage(os.Stderr)
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help")
	ret.Define("-h", usage)

	return ret
}

func (p *Executor) Define(name string, command *Command) {
	if _, ok := p.commands[name]; ok {
		panic(fmt.Errorf("duplicated command %s", name))
	}
	p.commands[name] = command
	for _, name := range command.Aliases {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

// Fallback sets the command that receives arguments not matching any name.
// Its function must take exactly one parameter, the unmatched argument.
func (p *Executor) Fallback(command *Command) {
	if !command.Func.IsValid() || command.Func.Type().NumIn() != 1 {
		panic(fmt.Errorf("fallback command must take one argument"))
	}
	p.fallback = command
}

var errorType = reflect.TypeFor[error]()

func (p *Executor) Execute(args []string) error {
	commands := p.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])

		command, ok := commands[name]
		if !ok {
			if p.fallback == nil {
				return fmt.Errorf("unknown command: %s", name)
			}
			if err := call(p.fallback, args[:1]); err != nil {
				return err
			}
			args = args[1:]
			continue
		}
		args = args[1:]

		if command.Func.IsValid() {
			n := command.Func.Type().NumIn()
			consumed := min(n, len(args))
			if err := call(command, args[:consumed]); err != nil {
				return err
			}
			args = args[consumed:]
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, cmd := range command.Subs {
				if _, ok := commands[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				commands[subname] = cmd
			}
		}
	}
	return nil
}

func call(command *Command, args []string) error {
	fnType := command.Func.Type()
	var callArgs []reflect.Value
	for i := range fnType.NumIn() {
		var rest []string
		if i < len(args) {
			rest = args[i:]
		}
		value, err := getArg(fnType.In(i), rest)
		if err != nil {
			return err
		}
		callArgs = append(callArgs, value)
	}
	rets := command.Func.Call(callArgs)
	if len(rets) > 0 && !rets[0].IsNil() {
		return rets[0].Interface().(error)
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

func (p *Executor) PrintUsage(w io.Writer) {
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(p.commands)) {
		command := p.commands[name]
		if command.Hidden || slices.Contains(command.Aliases, name) || seen[command] {
			continue
		}
		seen[command] = true
		printCommand(w, name, command, 0)
	}
}

func printCommand(w io.Writer, name string, command *Command, depth int) {
	indent := strings.Repeat("  ", depth)
	line := indent + name
	if command.Param != "" {
		line += " " + command.Param
	}
	if len(command.Aliases) > 0 {
		line += " (" + strings.Join(command.Aliases, ", ") + ")"
	}
	if command.Description != "" {
		line += "\t" + command.Description
	}
	fmt.Fprintln(w, line)
	for _, sub := range slices.Sorted(maps.Keys(command.Subs)) {
		if command.Subs[sub] == nil || command.Subs[sub].Hidden {
			continue
		}
		printCommand(w, sub, command.Subs[sub], depth+1)
	}
}

func getArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if len(args) == 0 {

		if t.Kind() == reflect.Pointer {
			// optional, use zero value
			return reflect.New(t.Elem()), nil
		}

		return ret, fmt.Errorf("expecting argument, got nothing")
	}

	if t.Kind() == reflect.Pointer {
		elemValue, err := getArg(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elemValue)
		return ptr, nil
	}

	str := args[0]

	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))
		return ret, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
		return ret, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)
		return ret, nil

	case reflect.String:
		ret.SetString(str)
		return ret, nil

	}

	return ret, fmt.Errorf("unsupported type: %v", t)
}
