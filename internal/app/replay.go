package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/padlink/internal/capture"
	"github.com/five82/padlink/internal/gamepad"
	"github.com/five82/padlink/internal/reconcile"
	"github.com/five82/padlink/internal/relay"
)

// ReplayOptions configure a headless replay.
type ReplayOptions struct {
	Path   string
	Tail   int // replay only the last N frames when positive
	Mode   string
	Out    io.Writer
	Logger *zap.Logger
}

// Replay feeds a captured JSONL stream through a store and loop, running one
// tick after each line and printing every notification to Out.
func Replay(ctx context.Context, opts ReplayOptions) error {
	mode, err := resolveMode(opts.Mode)
	if err != nil {
		return err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	frames, err := capture.Read(opts.Path, opts.Tail)
	if err != nil {
		return err
	}

	store := gamepad.NewStore()
	sched := &stepScheduler{}
	sink := &textSink{w: out}
	loop, err := reconcile.New(store, sched, sink, reconcile.WithMode(mode))
	if err != nil {
		return err
	}

	loop.Start()
	defer loop.Stop()

	for i, line := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg, err := relay.Decode([]byte(line))
		if err != nil {
			logger.Warn("skipping frame", zap.Int("frame", i+1), zap.Error(err))
		} else {
			relay.Apply(store, msg)
		}
		sink.printf("# tick %d\n", i+1)
		sched.step()
		if sink.err != nil {
			return fmt.Errorf("write replay: %w", sink.err)
		}
	}
	logger.Info("replay finished", zap.Int("frames", len(frames)), zap.Int("players", store.Len()))
	return nil
}

// stepScheduler holds the requested callback until step is called.
type stepScheduler struct {
	pending func()
}

func (s *stepScheduler) RequestNextTick(fn func()) {
	s.pending = fn
}

func (s *stepScheduler) step() {
	fn := s.pending
	s.pending = nil
	if fn != nil {
		fn()
	}
}

// textSink prints one line per notification. The first write error sticks.
type textSink struct {
	w   io.Writer
	err error
}

func (s *textSink) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func (s *textSink) RosterChanged(devices []*gamepad.Device) {
	parts := make([]string, len(devices))
	for i, d := range devices {
		parts[i] = fmt.Sprintf("%d:%s", d.Index, d.Name)
	}
	s.printf("roster [%s]\n", strings.Join(parts, " "))
}

func (s *textSink) ButtonChanged(value float64, deviceID int, label string) {
	s.printf("button %d %s %s\n", deviceID, label, formatFloat(value))
}

func (s *textSink) AxisChanged(value float64, deviceID int, label, stick string, isX bool) {
	s.printf("axis %d %s %s stick=%s x=%t\n", deviceID, label, formatFloat(value), stick, isX)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
