package procs

// Proc is one step of a pipeline. Run returns the step to run next, or nil when done.
type Proc[C any] interface {
	Run(ctx C) (Proc[C], error)
}

type Func[C any] func(ctx C) error

var _ Proc[any] = Func[any](nil)

func (f Func[C]) Run(ctx C) (Proc[C], error) {
	return nil, f(ctx)
}

// Run drives proc until it finishes or fails.
func Run[C any](ctx C, proc Proc[C]) error {
	var err error
	for proc != nil {
		proc, err = proc.Run(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}
