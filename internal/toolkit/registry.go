package toolkit

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"
)

// Registry holds the tool catalog and dispatches calls. Dispatch never
// propagates a failure: every outcome, success or fault, is rendered as a
// single text Result, so one failing call cannot crash the host loop.
type Registry struct {
	mu          sync.Mutex
	tools       map[string]Tool // wrapped with middlewares, used by Dispatch
	rawTools    map[string]Tool // unwrapped, used by Use to re-apply middlewares
	middlewares []Middleware
	opts        registryOptions
}

// NewRegistry creates a Registry with the given options.
func NewRegistry(opts ...RegistryOption) *Registry {
	o := registryOptions{recoverPanics: true}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{
		tools:    make(map[string]Tool),
		rawTools: make(map[string]Tool),
		opts:     o,
	}
}

// Register adds a tool, replacing any existing tool with the same name.
// Stored middlewares (see Use) are applied before registration.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := t.Name()
	r.rawTools[name] = t
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		t = r.middlewares[i](t)
	}
	r.tools[name] = t
}

// Tools returns the catalog sorted by name, so capability listings are stable
// across calls.
func (r *Registry) Tools() []Tool {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	slices.Sort(names)
	out := make([]Tool, 0, len(names))
	for _, name := range names {
		out = append(out, r.tools[name])
	}
	return out
}

// Get returns the tool with the given name (after middlewares), or (nil, false).
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tools[name]
	return t, ok
}

// Dispatch runs one tool call. An unlisted name, an argument fault, or a panic
// becomes an "Error: ..." text Result with IsError set; handler text passes
// through untouched. The after-dispatch hook (WithOnAfterDispatch) always runs.
func (r *Registry) Dispatch(ctx context.Context, name string, argsJSON []byte) (res Result) {
	r.mu.Lock()
	tool, ok := r.tools[name]
	r.mu.Unlock()
	if !ok {
		if r.opts.onAfter != nil {
			r.opts.onAfter(ctx, name, fmt.Errorf("%w: %s", ErrUnknownTool, name), 0)
		}
		return Result{Text: fmt.Sprintf("Error: Unknown tool: %s", name), IsError: true}
	}

	start := time.Now()
	var callErr error
	defer func() {
		if r.opts.onAfter != nil {
			r.opts.onAfter(ctx, name, callErr, time.Since(start))
		}
	}()
	if r.opts.recoverPanics {
		defer func() {
			if p := recover(); p != nil {
				callErr = &SystemError{Err: &panicError{p: p}}
				res = Result{Text: "Error: " + callErr.Error(), IsError: true}
			}
		}()
	}

	text, err := tool.Call(ctx, argsJSON)
	if err != nil {
		callErr = err
		return Result{Text: "Error: " + err.Error(), IsError: true}
	}
	return Result{Text: text}
}

// Use stores the given middlewares and reapplies them from scratch to all
// registered tools (onion order: first middleware is outermost). Tools
// registered afterwards also get the chain. Calling Use again replaces the
// chain and rewraps from raw tools, avoiding double-wrapping.
func (r *Registry) Use(middlewares ...Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.middlewares = middlewares
	for name, raw := range r.rawTools {
		t := raw
		for i := len(middlewares) - 1; i >= 0; i-- {
			t = middlewares[i](t)
		}
		r.tools[name] = t
	}
}
