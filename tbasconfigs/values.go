package tbasconfigs

import (
	"github.com/reusee/tbas/cmds"
	"github.com/reusee/tbas/configs"
	"github.com/reusee/tbas/vars"
)

func init() {
	cmds.Describe("-memory", "working memory cells")
	cmds.Describe("-max-steps", "abort runs after this many instructions")
	cmds.Describe("-dialect", "reference or corrected ALU and jump bounds")
	cmds.Describe("-modem", "dial the modem port to this address")
	cmds.Describe("-trace", "persist runs to this sqlite database")
}

type MemorySize int

var _ configs.Configurable = MemorySize(0)

func (MemorySize) ConfigExpr() string {
	return "memory_size"
}

const DefaultMemorySize = 256

var memorySizeFlag = cmds.Var[int]("-memory")

func (Module) MemorySize(
	loader configs.Loader,
) MemorySize {
	return MemorySize(vars.FirstNonZero(
		*memorySizeFlag,
		int(configs.Lookup[MemorySize](loader)),
		DefaultMemorySize,
	))
}

type MaxSteps int

var _ configs.Configurable = MaxSteps(0)

func (MaxSteps) ConfigExpr() string {
	return "max_steps"
}

var maxStepsFlag = cmds.Var[int]("-max-steps")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		int(configs.Lookup[MaxSteps](loader)),
	))
}

type Dialect string

var _ configs.Configurable = Dialect("")

func (Dialect) ConfigExpr() string {
	return "dialect"
}

var dialectFlag = cmds.Var[string]("-dialect")

func (Module) Dialect(
	loader configs.Loader,
) Dialect {
	return vars.FirstNonZero(
		Dialect(*dialectFlag),
		configs.Lookup[Dialect](loader),
		Dialect("reference"),
	)
}

type ModemAddr string

var _ configs.Configurable = ModemAddr("")

func (ModemAddr) ConfigExpr() string {
	return "modem_addr"
}

var modemAddrFlag = cmds.Var[string]("-modem")

func (Module) ModemAddr(
	loader configs.Loader,
) ModemAddr {
	return vars.FirstNonZero(
		ModemAddr(*modemAddrFlag),
		configs.Lookup[ModemAddr](loader),
	)
}

type TraceDB string

var _ configs.Configurable = TraceDB("")

func (TraceDB) ConfigExpr() string {
	return "trace_db"
}

var traceDBFlag = cmds.Var[string]("-trace")

func (Module) TraceDB(
	loader configs.Loader,
) TraceDB {
	return vars.FirstNonZero(
		TraceDB(*traceDBFlag),
		configs.Lookup[TraceDB](loader),
	)
}
