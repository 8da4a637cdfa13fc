package devices

import (
	"context"
	"log/slog"

	"github.com/reusee/tbas/logs"
	"github.com/reusee/tbas/tbas"
)

// Device reports every task as one log event.
type Device struct {
	logger logs.Logger
}

var _ tbas.Device = new(Device)

func (Module) Device(
	logger logs.Logger,
) tbas.Device {
	return &Device{
		logger: logger.With("device", "log"),
	}
}

func (d *Device) Exec(ctx context.Context, task tbas.Task, data []byte) error {
	var attrs []slog.Attr
	switch task {

	case tbas.TaskBlinken:
		b := ParseBlinken(data)
		attrs = []slog.Attr{
			slog.Int("part", int(b.Part)),
			slog.Int("pos", int(b.Pos)),
			slog.Int("mask", int(b.Mask)),
			slog.Int("vel", int(b.Vel)),
			slog.Int("vel_delay", int(b.VelDelay)),
			slog.Int("lfo", int(b.LFO)),
			slog.Int("lfo_delay", int(b.LFODelay)),
		}

	case tbas.TaskScroller:
		s := ParseScroller(data)
		attrs = []slog.Attr{
			slog.Int("ping_pong", int(s.PingPong)),
			slog.Int("steps", int(s.Steps)),
			slog.Int("blanks", int(s.Blanks)),
			slog.String("message", s.Message),
		}

	case tbas.TaskWarDialer:
		w := ParseWarDialer(data)
		attrs = []slog.Attr{
			slog.Int("number", int(w.Number)),
			slog.String("speech", w.Speech),
		}

	default:
		attrs = []slog.Attr{
			slog.String("text", string(data)),
		}
	}

	d.logger.LogAttrs(ctx, slog.LevelInfo, task.String(), attrs...)
	return nil
}
