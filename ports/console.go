package ports

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/reusee/tbas/tbas"
)

// Console adapts r and w into a port. A nil r or w leaves that direction absent.
func Console(r io.Reader, w io.Writer) tbas.Port {
	var port tbas.Port
	if r != nil {
		port.Read = readFunc(bufio.NewReader(r))
	}
	if w != nil {
		port.Write = writeFunc(w)
	}
	return port
}

func readFunc(br *bufio.Reader) tbas.ReadFunc {
	var mu sync.Mutex
	return func(ctx context.Context, n int) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return readRunes(br, n)
	}
}

func readRunes(br *bufio.Reader, n int) (string, error) {
	var sb strings.Builder
	for range n {
		r, _, err := br.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				break
			}
			return "", err
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

func writeFunc(w io.Writer) tbas.WriteFunc {
	var mu sync.Mutex
	return func(ctx context.Context, s string) error {
		mu.Lock()
		defer mu.Unlock()
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err := io.WriteString(w, s)
		return err
	}
}
