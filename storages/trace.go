package storages

import (
	"context"

	"github.com/reusee/tbas/logs"
	"github.com/reusee/tbas/tbas"
	"github.com/reusee/tbas/tbasconfigs"
)

// Trace persists a finished run. It is a no-op when no trace database is configured.
type Trace func(ctx context.Context, c *tbas.Context, dialect tbas.Dialect) (id int64, err error)

func (Module) Trace(
	path tbasconfigs.TraceDB,
	logger logs.Logger,
) Trace {
	return func(ctx context.Context, c *tbas.Context, dialect tbas.Dialect) (int64, error) {
		if path == "" {
			return 0, nil
		}
		store, err := Open(string(path))
		if err != nil {
			return 0, err
		}
		defer store.Close()
		id, err := store.SaveRun(ctx, c, dialect)
		if err != nil {
			return 0, err
		}
		logger.InfoContext(ctx, "run traced",
			"path", string(path),
			"run", id,
			"frames", len(c.Frames),
		)
		return id, nil
	}
}
