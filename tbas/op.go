package tbas

type Op byte

const (
	OpAdvance   Op = '>'
	OpRetreat   Op = '<'
	OpIncrement Op = '+'
	OpDecrement Op = '-'
	OpBeginLoop Op = '['
	OpEndLoop   Op = ']'
	OpSetMode   Op = '='
	OpRun       Op = '?'
)

func (o Op) Valid() bool {
	switch o {
	case OpAdvance, OpRetreat,
		OpIncrement, OpDecrement,
		OpBeginLoop, OpEndLoop,
		OpSetMode, OpRun:
		return true
	}
	return false
}

func (o Op) String() string {
	switch o {
	case OpAdvance:
		return "advance_mptr"
	case OpRetreat:
		return "retreat_mptr"
	case OpIncrement:
		return "increment_mcell"
	case OpDecrement:
		return "decrement_mcell"
	case OpBeginLoop:
		return "begin_loop"
	case OpEndLoop:
		return "end_loop"
	case OpSetMode:
		return "set_iomode"
	case OpRun:
		return "run_operation"
	}
	return "unknown"
}

// Char returns the source character of the operator.
func (o Op) Char() string {
	return string(rune(o))
}
