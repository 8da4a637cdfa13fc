package tbasconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tbas/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
