package condwarn

import (
	"log/slog"
	"sync"

	"github.com/reoring/condwarn/i18n"
)

// Registry maps condition names to the warnings declared under them,
// preserving registration order across all record types. A condition is
// declared implicitly the first time a field registers under it; querying an
// undeclared condition is an error rather than a silent miss.
//
// All mutation goes through the registry's mutex: record types may be defined
// from init functions on different goroutines, and Satisfy/Invoke callers are
// not required to coordinate with them.
type Registry struct {
	mu       sync.Mutex
	warnings map[string][]*Warning
	order    []string // condition keys in first-registration order
	logger   *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger non-error-mode warnings are emitted through.
// The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{warnings: map[string][]*Warning{}}
	for _, o := range opts {
		o(r)
	}
	return r
}

// register appends w under its condition key, declaring the key on first use.
// Called only by record-type registration.
func (r *Registry) register(w *Warning) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := w.Condition()
	if _, ok := r.warnings[key]; !ok {
		r.order = append(r.order, key)
	}
	r.warnings[key] = append(r.warnings[key], w)
}

// Satisfy marks every warning declared under key as no longer applicable.
// Idempotent. Fails with unknown_condition if no field ever declared key.
func (r *Registry) Satisfy(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ws, ok := r.warnings[key]
	if !ok {
		return unknownCondition(key)
	}
	for _, w := range ws {
		w.Satisfy()
	}
	return nil
}

// Invoke fires every warning declared under key in registration order. The
// first error-mode unsatisfied warning aborts the call; warnings after it are
// not evaluated. Non-error-mode unsatisfied warnings log and do not stop the
// traversal. Fails with unknown_condition if no field ever declared key.
func (r *Registry) Invoke(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ws, ok := r.warnings[key]
	if !ok {
		return unknownCondition(key)
	}
	return invokeAll(ws, r.logger)
}

// InvokeAll fires every declared condition in first-registration order.
// Evaluation is fail-fast: the first error aborts the remaining conditions,
// matching per-key Invoke semantics.
func (r *Registry) InvokeAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range r.order {
		if err := invokeAll(r.warnings[key], r.logger); err != nil {
			return err
		}
	}
	return nil
}

func invokeAll(ws []*Warning, logger *slog.Logger) error {
	for _, w := range ws {
		if err := w.Invoke(logger); err != nil {
			return err
		}
	}
	return nil
}

// Conditions returns the declared condition keys in first-registration order.
func (r *Registry) Conditions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func unknownCondition(key string) error {
	return Issues{Issue{
		Condition: key,
		Code:      CodeUnknownCondition,
		Message:   i18n.T(CodeUnknownCondition, map[string]string{"condition": key}),
	}}
}

// defaultRegistry is the process-wide registry used by record types that do
// not name one explicitly.
var (
	defaultMu       sync.Mutex
	defaultRegistry = NewRegistry()
)

// Default returns the process-wide registry.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultRegistry
}

// Reset replaces the process-wide registry with an empty one. Intended for
// tests that define record types against the default registry.
func Reset(opts ...Option) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = NewRegistry(opts...)
}

// Satisfy marks every warning under key in the default registry.
func Satisfy(key string) error { return Default().Satisfy(key) }

// Invoke fires every warning under key in the default registry.
func Invoke(key string) error { return Default().Invoke(key) }

// InvokeAll fires every declared condition in the default registry.
func InvokeAll() error { return Default().InvokeAll() }
