package debugs

import (
	"context"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tbas/modes"
	"github.com/reusee/tbas/tbas"
)

func TestTap(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		tap Tap,
		inspect Inspect,
	) {
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
		c := new(tbas.Interpreter).Run(context.Background(), "+")
		inspect(t.Context(), c)
	})
}
