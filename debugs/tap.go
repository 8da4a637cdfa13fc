package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/tbas/logs"
	"github.com/reusee/tbas/tbas"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap runs an interactive starlark REPL on stdin with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}

// Inspect opens the REPL over a finished run.
type Inspect func(ctx context.Context, c *tbas.Context)

func (Module) Inspect(
	tap Tap,
) Inspect {
	return func(ctx context.Context, c *tbas.Context) {
		tap(ctx, "run", Globals(c))
	}
}

func toStringDict(globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}
