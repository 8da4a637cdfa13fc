package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/reusee/tbas/cmds"
	"github.com/reusee/tbas/tbas"
	"github.com/reusee/tbas/tbasconfigs"
)

var errUsage = errors.New("usage")

// checkFlags rejects port and dialect settings that cannot make a run.
func checkFlags(
	consoleStdio bool,
	modemStdio bool,
	modemAddr tbasconfigs.ModemAddr,
	dialect tbasconfigs.Dialect,
) error {
	if consoleStdio && modemStdio {
		return fmt.Errorf("%w: -c and -m are exclusive", errUsage)
	}
	if modemStdio && modemAddr != "" {
		return fmt.Errorf("%w: -m and -modem %s are exclusive", errUsage, modemAddr)
	}
	if _, err := tbas.ParseDialect(string(dialect)); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return nil
}

func usage(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	fmt.Fprintln(os.Stderr, "usage: tbas [flags] <program>")
	cmds.GlobalExecutor.PrintUsage(os.Stderr)
	os.Exit(2)
}
