package ports

import (
	"bufio"
	"context"
	"errors"
	"os"

	"github.com/reusee/tbas/tbas"
	"golang.org/x/term"
)

var ErrInterrupted = errors.New("interrupted")

// Stdio is a port on the process standard streams. When stdin is a terminal
// each read switches it to raw mode so single keys are delivered without Enter.
func Stdio() tbas.Port {
	in := bufio.NewReader(os.Stdin)
	fd := int(os.Stdin.Fd())
	read := readFunc(in)
	return tbas.Port{
		Read: func(ctx context.Context, n int) (string, error) {
			if !term.IsTerminal(fd) {
				return read(ctx, n)
			}
			state, err := term.MakeRaw(fd)
			if err != nil {
				return "", err
			}
			defer term.Restore(fd, state)
			s, err := read(ctx, n)
			if err != nil {
				return "", err
			}
			for _, r := range s {
				// ctrl-c and ctrl-d do not raise signals in raw mode
				if r == 0x03 || r == 0x04 {
					return "", ErrInterrupted
				}
			}
			return s, nil
		},
		Write: writeFunc(os.Stdout),
	}
}
