package debugs

import (
	"io"

	"github.com/reusee/tbas/tbas"
	"gopkg.in/yaml.v3"
)

type dumpedFrame struct {
	Index    int    `yaml:"index"`
	EPtr     int    `yaml:"eptr"`
	Operator string `yaml:"operator"`
	Command  string `yaml:"command"`
	MPtr     int    `yaml:"mptr"`
	Cells    []int  `yaml:"cells,flow"`
	Buffer   []int  `yaml:"buffer,flow"`
	IOMode   string `yaml:"imode"`
	DeadLoop int    `yaml:"in_dead_loop,omitempty"`
	LoopRef  []int  `yaml:"loop_ref,flow,omitempty"`
	Goto     *int   `yaml:"goto,omitempty"`
	Noop     bool   `yaml:"noop,omitempty"`
	Msg      string `yaml:"msg,omitempty"`
	Fault    bool   `yaml:"fault,omitempty"`
}

func ints(bs []byte) []int {
	ret := make([]int, len(bs))
	for i, b := range bs {
		ret[i] = int(b)
	}
	return ret
}

// DumpFrames writes frames as a YAML sequence.
func DumpFrames(w io.Writer, frames []tbas.Frame) error {
	docs := make([]dumpedFrame, len(frames))
	for i, frame := range frames {
		docs[i] = dumpedFrame{
			Index:    i,
			EPtr:     frame.EPtr,
			Operator: frame.Operator.Char(),
			Command:  frame.Operator.String(),
			MPtr:     frame.MPtr,
			Cells:    ints(frame.Cells),
			Buffer:   ints(frame.Buffer),
			IOMode:   frame.IOMode.String(),
			DeadLoop: frame.DeadLoop,
			LoopRef:  frame.LoopRef,
			Goto:     frame.Goto,
			Noop:     frame.Noop,
			Msg:      frame.Msg,
			Fault:    frame.Fault,
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return err
	}
	return enc.Close()
}
