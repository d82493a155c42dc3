package dbscan

import (
	"context"
	"fmt"
	"log/slog"
)

// Option configures Run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize a Run.
type Options struct {
	// Logger receives debug records about the run. Discards by default.
	Logger *slog.Logger

	// OnSnapshot is called with every snapshot right after it is recorded,
	// in trace order. The snapshot handed over is the one stored in the
	// trace; it must be treated as read-only.
	OnSnapshot func(Snapshot)

	// BorderReclaim lets a point labeled Noise by the main pass be claimed
	// later as a border point of a cluster. When false the main pass marks
	// noise points processed, so expansion skips them and they stay Noise.
	BorderReclaim bool

	// CapacityHint pre-sizes the trace. 0 lets Run pick n+1.
	CapacityHint int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - a logger that discards every record
//   - a no-op OnSnapshot hook
//   - BorderReclaim disabled (main-pass noise stays noise)
//   - CapacityHint 0
func DefaultOptions() Options {
	return Options{
		Logger:        newNopLogger(),
		OnSnapshot:    func(Snapshot) {},
		BorderReclaim: false,
		CapacityHint:  0,
		err:           nil,
	}
}

// WithLogger routes debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnSnapshot registers fn to observe each snapshot as it is recorded.
// A nil fn is ignored.
func WithOnSnapshot(fn func(Snapshot)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSnapshot = fn
		}
	}
}

// WithBorderReclaim toggles the textbook Noise → border upgrade.
func WithBorderReclaim(on bool) Option {
	return func(o *Options) {
		o.BorderReclaim = on
	}
}

// WithCapacityHint pre-sizes the trace to n snapshots.
//
//	n > 0: use n
//	n == 0: default (len(points)+1)
//	n < 0: invalid option → ErrOptionViolation
func WithCapacityHint(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: CapacityHint cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.CapacityHint = n
	}
}

// nopHandler drops every record and reports itself disabled, so the
// caller skips formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }
