package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tbas/logs"
	"github.com/reusee/tbas/tbasconfigs"
)

type Module struct {
	dscope.Module
	Configs tbasconfigs.Module
	Logs    logs.Module
}
