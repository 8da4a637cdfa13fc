package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Span identifies the log events of one unit of work, such as one program run.
type Span string

type spanKey struct{}

var SpanKey spanKey
