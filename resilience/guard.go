package resilience

import (
	"errors"
	"fmt"
)

// Phase is the stage a single guarded call is in.
type Phase int

const (
	// PhaseAttempting is the initial phase: the primary operation runs.
	PhaseAttempting Phase = iota
	// PhaseFallingBack means the primary failed and the fallback runs.
	PhaseFallingBack
	// PhaseSucceeded is terminal: a value was produced.
	PhaseSucceeded
	// PhaseFailed is terminal: the fallback failed too.
	PhaseFailed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAttempting:
		return "attempting"
	case PhaseFallingBack:
		return "falling-back"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Common errors.
var (
	ErrPrimaryPanic = errors.New("primary operation panicked")
	ErrNilPrimary   = errors.New("primary operation is nil")
	ErrNilFallback  = errors.New("fallback operation is nil")
)

// GuardConfig configures a guard.
type GuardConfig struct {
	// Name identifies this guard for logging.
	Name string
	// OnTransition is called on every phase change of a call.
	OnTransition func(name string, from, to Phase)
	// OnPrimaryFailure receives the primary error that the guard swallows.
	OnPrimaryFailure func(name string, err error)
}

// DefaultGuardConfig returns a config with no hooks.
func DefaultGuardConfig(name string) GuardConfig {
	return GuardConfig{Name: name}
}

// Guard runs a primary operation and, when it fails, a fallback in its place.
// Callers never see the primary's error; a fallback error is returned as-is.
//
// A Guard keeps no per-call state, so one instance may be shared by any
// number of goroutines.
type Guard[T any] struct {
	config GuardConfig
}

// NewGuard creates a new guard.
func NewGuard[T any](config GuardConfig) *Guard[T] {
	return &Guard[T]{config: config}
}

// Name returns the guard name.
func (g *Guard[T]) Name() string { return g.config.Name }

// Execute runs primary and returns its result. If primary returns an error or
// panics, fallback is run and its result (value and error) is returned instead.
// Panics raised by fallback are not recovered.
func (g *Guard[T]) Execute(primary, fallback func() (T, error)) (T, error) {
	result, err := g.attempt(primary)
	if err == nil {
		g.transition(PhaseAttempting, PhaseSucceeded)
		return result, nil
	}

	if g.config.OnPrimaryFailure != nil {
		g.config.OnPrimaryFailure(g.config.Name, err)
	}
	g.transition(PhaseAttempting, PhaseFallingBack)

	if fallback == nil {
		g.transition(PhaseFallingBack, PhaseFailed)
		var zero T
		return zero, ErrNilFallback
	}

	result, err = fallback()
	if err != nil {
		g.transition(PhaseFallingBack, PhaseFailed)
		var zero T
		return zero, err
	}

	g.transition(PhaseFallingBack, PhaseSucceeded)
	return result, nil
}

// attempt runs primary, converting a panic into an error.
func (g *Guard[T]) attempt(primary func() (T, error)) (result T, err error) {
	if primary == nil {
		return result, ErrNilPrimary
	}
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = fmt.Errorf("%w: %v", ErrPrimaryPanic, r)
		}
	}()
	return primary()
}

func (g *Guard[T]) transition(from, to Phase) {
	if g.config.OnTransition != nil {
		g.config.OnTransition(g.config.Name, from, to)
	}
}

// Execute runs primary through an unnamed guard with no hooks.
func Execute[T any](primary, fallback func() (T, error)) (T, error) {
	return NewGuard[T](GuardConfig{}).Execute(primary, fallback)
}

// ExecuteFunc is Execute for operations that return only an error.
func ExecuteFunc(primary, fallback func() error) error {
	var p, f func() (struct{}, error)
	if primary != nil {
		p = func() (struct{}, error) { return struct{}{}, primary() }
	}
	if fallback != nil {
		f = func() (struct{}, error) { return struct{}{}, fallback() }
	}
	_, err := Execute(p, f)
	return err
}
