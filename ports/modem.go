package ports

import (
	"bufio"
	"context"
	"io"
	"net"
	"time"

	"github.com/reusee/tbas/logs"
	"github.com/reusee/tbas/nets"
	"github.com/reusee/tbas/tbas"
)

// Modem is a port on a network connection. Reads and writes are interrupted
// when their context is done.
func Modem(conn net.Conn) tbas.Port {
	read := readFunc(bufio.NewReader(conn))
	write := writeFunc(conn)
	return tbas.Port{
		Read: func(ctx context.Context, n int) (string, error) {
			stop := interruptOnDone(ctx, conn)
			defer stop()
			return read(ctx, n)
		},
		Write: func(ctx context.Context, s string) error {
			stop := interruptOnDone(ctx, conn)
			defer stop()
			return write(ctx, s)
		},
	}
}

func interruptOnDone(ctx context.Context, conn net.Conn) func() {
	stop := context.AfterFunc(ctx, func() {
		conn.SetDeadline(time.Now())
	})
	return func() {
		if !stop() {
			// deadline already set by the interrupt
			conn.SetDeadline(time.Time{})
		}
	}
}

type DialModem func(ctx context.Context, addr string) (tbas.Port, io.Closer, error)

func (Module) DialModem(
	dialer nets.Dialer,
	logger logs.Logger,
) DialModem {
	return func(ctx context.Context, addr string) (tbas.Port, io.Closer, error) {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return tbas.Port{}, nil, err
		}
		logger.InfoContext(ctx, "modem connected",
			"addr", addr,
			"remote", conn.RemoteAddr().String(),
		)
		return Modem(conn), conn, nil
	}
}
