package storages

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
