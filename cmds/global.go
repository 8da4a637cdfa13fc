package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Fallback(command *Command) {
	GlobalExecutor.Fallback(command)
}

// Execute runs the global executor and exits the process on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(2)
	}
}

// Describe sets the usage description of a defined command.
func Describe(name, desc string) {
	command, ok := GlobalExecutor.commands[name]
	if !ok {
		panic(fmt.Errorf("undefined command %s", name))
	}
	command.Desc(desc)
}
