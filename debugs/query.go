package debugs

import (
	"context"
	"fmt"

	"github.com/reusee/tbas/logs"
	"github.com/reusee/tbas/tbas"
	"go.starlark.net/starlark"
)

// Query evaluates a starlark expression over a finished run.
type Query func(ctx context.Context, c *tbas.Context, expr string) (starlark.Value, error)

func (Module) Query(
	logger logs.Logger,
) Query {
	return func(ctx context.Context, c *tbas.Context, expr string) (starlark.Value, error) {
		thread := &starlark.Thread{
			Name: "query",
		}
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()

		value, err := starlark.EvalOptions(fileOptions, thread, "query", expr, toStringDict(Globals(c)))
		if err != nil {
			return nil, fmt.Errorf("query %q: %w", expr, err)
		}
		logger.DebugContext(ctx, "query",
			"expr", expr,
			"type", value.Type(),
		)
		return value, nil
	}
}
