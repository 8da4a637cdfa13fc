package procs

// Procs runs its elements in order. A step that returns a successor is
// replaced by it in place.
type Procs[C any] []Proc[C]

var _ Proc[any] = Procs[any]{}

func (p Procs[C]) Run(ctx C) (Proc[C], error) {
	for len(p) > 0 && p[0] == nil {
		p = p[1:]
	}
	if len(p) == 0 {
		return nil, nil
	}
	next, err := p[0].Run(ctx)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return p[1:], nil
	}
	p[0] = next
	return p, nil
}
