package ports

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tbas/logs"
	"github.com/reusee/tbas/nets"
)

type Module struct {
	dscope.Module
	Nets nets.Module
	Logs logs.Module
}
