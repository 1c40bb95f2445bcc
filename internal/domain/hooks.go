package domain

import (
	"context"
	"log/slog"
)

// HookFunc is a callback bound to a named build action.
type HookFunc func(ctx context.Context) error

// Hooks binds callbacks to run before or after named build actions. It
// models the orchestrator contract explicitly: registration is a normal,
// testable call instead of load-time side effects. All hooks for an action
// run to completion even when one fails; the first error is reported.
type Hooks struct {
	pre  map[string][]HookFunc
	post map[string][]HookFunc
}

// NewHooks creates an empty hook registry.
func NewHooks() *Hooks {
	return &Hooks{
		pre:  make(map[string][]HookFunc),
		post: make(map[string][]HookFunc),
	}
}

// AddPreAction registers fn to run before the named action starts.
func (h *Hooks) AddPreAction(action string, fn HookFunc) {
	h.pre[action] = append(h.pre[action], fn)
}

// AddPostAction registers fn to run after the named action completes,
// whether it succeeded or failed.
func (h *Hooks) AddPostAction(action string, fn HookFunc) {
	h.post[action] = append(h.post[action], fn)
}

// RunPre invokes all pre-action hooks for action in registration order.
func (h *Hooks) RunPre(ctx context.Context, action string) error {
	return runHooks(ctx, action, "pre", h.pre[action])
}

// RunPost invokes all post-action hooks for action in registration order.
func (h *Hooks) RunPost(ctx context.Context, action string) error {
	return runHooks(ctx, action, "post", h.post[action])
}

func runHooks(ctx context.Context, action, phase string, hooks []HookFunc) error {
	var firstErr error

	for _, fn := range hooks {
		if err := fn(ctx); err != nil {
			slog.Error("hook failed", "action", action, "phase", phase, "error", err)

			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
