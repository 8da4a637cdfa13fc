package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tbas/debugs"
	"github.com/reusee/tbas/devices"
	"github.com/reusee/tbas/ports"
	"github.com/reusee/tbas/storages"
	"github.com/reusee/tbas/tbas"
)

type Module struct {
	dscope.Module
	Tbas     tbas.Module
	Ports    ports.Module
	Devices  devices.Module
	Storages storages.Module
	Debugs   debugs.Module
}
