package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/reusee/tbas/cmds"
	"github.com/reusee/tbas/debugs"
	"github.com/reusee/tbas/storages"
)

type runsCommand func(ctx context.Context, w io.Writer, store *storages.Store) error

var runsAction runsCommand

func init() {
	cmds.Define("runs", cmds.Sub(map[string]*cmds.Command{
		"list": cmds.Func(func() {
			runsAction = listRuns
		}).Desc("list traced runs"),
		"show": cmds.Func(func(id int64) {
			runsAction = func(ctx context.Context, w io.Writer, store *storages.Store) error {
				return showRun(ctx, w, store, id)
			}
		}).Desc("dump the frames of a traced run"),
	}).Desc("browse the trace database"))
}

func listRuns(ctx context.Context, w io.Writer, store *storages.Store) error {
	infos, err := store.Runs(ctx)
	if err != nil {
		return err
	}
	for _, info := range infos {
		status := "ok"
		if info.Error != "" {
			status = "fault"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d frames\t%s\n",
			info.ID,
			info.CreatedAt.Format(time.DateTime),
			info.Dialect,
			status,
			info.NumFrames,
			info.Program,
		)
	}
	return nil
}

func showRun(ctx context.Context, w io.Writer, store *storages.Store, id int64) error {
	run, err := store.LoadRun(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "# %s\n", run.Program)
	if run.Error != "" {
		fmt.Fprintf(w, "# %s\n", run.Error)
	}
	return debugs.DumpFrames(w, run.Frames)
}
