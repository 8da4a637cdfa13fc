package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/tbas/cmds"
	"github.com/reusee/tbas/debugs"
	"github.com/reusee/tbas/logs"
	"github.com/reusee/tbas/modes"
	"github.com/reusee/tbas/ports"
	"github.com/reusee/tbas/procs"
	"github.com/reusee/tbas/storages"
	"github.com/reusee/tbas/tbas"
	"github.com/reusee/tbas/tbasconfigs"
)

var (
	consoleOnStdio = cmds.Switch("-c")
	modemOnStdio   = cmds.Switch("-m")
	printFrames    = cmds.Collect[int]("-frame")
	dumpFrames     = cmds.Switch("-dump")
	queries        = cmds.Collect[string]("-query")
	inspectRun     = cmds.Switch("-inspect")

	program string
)

func init() {
	cmds.Describe("-c", "attach the console port to stdio")
	cmds.Describe("-m", "attach the modem port to stdio")
	cmds.Describe("-frame", "print the cells of frame N, may repeat")
	cmds.Describe("-dump", "print all frames as yaml")
	cmds.Describe("-query", "evaluate a starlark expression over the run, may repeat")
	cmds.Describe("-inspect", "open a starlark repl over the run")
	cmds.Fallback(cmds.Func(func(source string) {
		program = source
	}).Desc("program"))
}

func main() {
	cmds.Execute(os.Args[1:])
	if runsAction != nil {
		browseRuns()
		return
	}
	if program == "" {
		usage(nil)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	scope.Call(func(
		modemAddr tbasconfigs.ModemAddr,
		dialect tbasconfigs.Dialect,
	) {
		if err := checkFlags(*consoleOnStdio, *modemOnStdio, modemAddr, dialect); err != nil {
			usage(err)
		}
	})

	var failed bool
	scope.Call(func(
		logger logs.Logger,
		newInterpreter tbas.NewInterpreter,
		dialModem ports.DialModem,
		modemAddr tbasconfigs.ModemAddr,
		trace storages.Trace,
		query debugs.Query,
		inspect debugs.Inspect,
	) {

		var console, modem tbas.Port
		switch {
		case *consoleOnStdio:
			console = ports.Stdio()
		case *modemOnStdio:
			modem = ports.Stdio()
		}
		if modemAddr != "" {
			port, closer, err := dialModem(ctx, string(modemAddr))
			ce(err)
			defer closer.Close()
			modem = port
		}

		interp := newInterpreter(console, modem)
		c := interp.Run(ctx, program)
		failed = c.Failed()
		if *consoleOnStdio || *modemOnStdio {
			fmt.Println()
		}

		report := procs.Procs[context.Context]{
			procs.Func[context.Context](func(ctx context.Context) error {
				for _, i := range *printFrames {
					if i < 0 || i >= len(c.Frames) {
						return fmt.Errorf("no frame %d, run has %d", i, len(c.Frames))
					}
					fmt.Println(c.Frames[i].FormatCells("%03d"))
				}
				return nil
			}),
			procs.Func[context.Context](func(ctx context.Context) error {
				if !*dumpFrames {
					return nil
				}
				return debugs.DumpFrames(os.Stdout, c.Frames)
			}),
			procs.Func[context.Context](func(ctx context.Context) error {
				id, err := trace(ctx, c, interp.Dialect)
				if err != nil {
					logger.ErrorContext(ctx, "trace", "error", err)
				} else if id > 0 {
					logger.DebugContext(ctx, "traced", "run", id)
				}
				return nil
			}),
			procs.Func[context.Context](func(ctx context.Context) error {
				for _, expr := range *queries {
					value, err := query(ctx, c, expr)
					if err != nil {
						return err
					}
					fmt.Println(value.String())
				}
				return nil
			}),
			procs.Func[context.Context](func(ctx context.Context) error {
				if *inspectRun {
					inspect(ctx, c)
				}
				return nil
			}),
		}
		ce(procs.Run[context.Context](ctx, report))

		if c.Err != nil {
			fmt.Fprintln(os.Stderr, c.Err)
		}
	})

	if failed {
		os.Exit(1)
	}
}

func browseRuns() {
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		path tbasconfigs.TraceDB,
	) {
		if path == "" {
			ce(fmt.Errorf("no trace database, set -trace or trace_db"))
		}
		store, err := storages.Open(string(path))
		ce(err)
		defer store.Close()
		ce(runsAction(context.Background(), os.Stdout, store))
	})
}

func ce(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
