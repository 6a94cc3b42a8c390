package toolkit

import (
	"context"
	"time"
)

// RegistryOption configures a Registry.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	recoverPanics bool
	onAfter       func(ctx context.Context, tool string, err error, dur time.Duration)
}

// WithRecoverPanics controls panic recovery in Dispatch (enabled by default).
// A recovered panic is rendered as an "Error: ..." result.
func WithRecoverPanics(enable bool) RegistryOption {
	return func(o *registryOptions) {
		o.recoverPanics = enable
	}
}

// WithOnAfterDispatch sets a hook called after every dispatched call with the
// tool name, the call error (nil on success), and the duration.
func WithOnAfterDispatch(fn func(ctx context.Context, tool string, err error, dur time.Duration)) RegistryOption {
	return func(o *registryOptions) {
		o.onAfter = fn
	}
}
