package tbas

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tbas/logs"
	"github.com/reusee/tbas/tbasconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs tbasconfigs.Module
}

type NewInterpreter func(console, modem Port) *Interpreter

func (Module) NewInterpreter(
	logger logs.Logger,
	newSpan logs.NewSpan,
	device Device,
	memorySize tbasconfigs.MemorySize,
	maxSteps tbasconfigs.MaxSteps,
	dialectName tbasconfigs.Dialect,
) NewInterpreter {
	dialect, err := ParseDialect(string(dialectName))
	if err != nil {
		// the cli rejects bad names with a usage error before resolving this
		panic(err)
	}
	return func(console, modem Port) *Interpreter {
		return &Interpreter{
			Console:    console,
			Modem:      modem,
			Device:     device,
			Logger:     logger,
			NewSpan:    newSpan,
			MemorySize: int(memorySize),
			MaxSteps:   int(maxSteps),
			Dialect:    dialect,
		}
	}
}
