package tbas

import (
	"context"
)

type ReadFunc func(ctx context.Context, n int) (string, error)

type WriteFunc func(ctx context.Context, s string) error

// Port is an optional read/write callback pair. A nil func is an absent port.
type Port struct {
	Read  ReadFunc
	Write WriteFunc
}

type Device interface {
	Exec(ctx context.Context, task Task, payload []byte) error
}

type DeviceFunc func(ctx context.Context, task Task, payload []byte) error

var _ Device = DeviceFunc(nil)

func (d DeviceFunc) Exec(ctx context.Context, task Task, payload []byte) error {
	return d(ctx, task, payload)
}
