package tbas

type Task uint8

const (
	TaskTBAS Task = iota
	TaskDialer
	TaskSpeaker
	TaskBlinken
	TaskScroller
	TaskWarDialer
	TaskBox
	TaskTBASCL
	TaskTBASED

	numTasks
)

func (t Task) Valid() bool {
	return t < numTasks
}

func (t Task) String() string {
	switch t {
	case TaskTBAS:
		return "tbas"
	case TaskDialer:
		return "dialer"
	case TaskSpeaker:
		return "speaker"
	case TaskBlinken:
		return "blinken"
	case TaskScroller:
		return "scroller"
	case TaskWarDialer:
		return "war_dialer"
	case TaskBox:
		return "box"
	case TaskTBASCL:
		return "tbascl"
	case TaskTBASED:
		return "tbased"
	}
	return "unknown"
}
