package vimcore

import "fmt"

// ModeRegistry is C2: the set of modes a host has registered, plus the
// current/previous mode tracking that SwitchPreviousMode (Ctrl-O, "gv",
// and friends) depends on.
//
// Previous-mode tracking skips consecutive visual sub-modes: after
// Normal -> VisualCharacter -> VisualLine, Previous is still Normal (the
// mode current before the visual excursion), not VisualCharacter. See
// Switch for the exact rule.
type ModeRegistry struct {
	modes       map[ModeKind]Mode
	current     Mode
	previous    Mode
	previousSet bool

	// OnSwitch, if set, is invoked after every successful Switch with the
	// mode being left and the mode being entered. The engine wires this
	// to its event sink; tests may set it directly.
	OnSwitch func(prev, cur Mode)
}

// NewModeRegistry creates a registry whose current mode is a built-in
// uninitialized placeholder; a host must Add and Switch to a real mode
// before processing input.
func NewModeRegistry() *ModeRegistry {
	u := uninitializedMode{}
	return &ModeRegistry{
		modes:   map[ModeKind]Mode{ModeUninitialized: u},
		current: u,
	}
}

// Add registers m under m.Kind(), replacing any mode previously
// registered for that kind.
func (r *ModeRegistry) Add(m Mode) {
	r.modes[m.Kind()] = m
}

// Get returns the mode registered for kind, if any.
func (r *ModeRegistry) Get(kind ModeKind) (Mode, bool) {
	m, ok := r.modes[kind]
	return m, ok
}

// All returns every registered mode, in no particular order.
func (r *ModeRegistry) All() []Mode {
	out := make([]Mode, 0, len(r.modes))
	for _, m := range r.modes {
		out = append(out, m)
	}
	return out
}

// Current returns the mode currently active.
func (r *ModeRegistry) Current() Mode { return r.current }

// Previous returns the mode that was active before the current one, and
// whether a previous mode has been recorded at all (false only before
// the first Switch call).
func (r *ModeRegistry) Previous() (Mode, bool) {
	return r.previous, r.previousSet
}

// Switch makes kind the current mode, carrying arg to its OnEnter. It
// runs, in order: OnLeave on the outgoing mode, the previous-mode
// bookkeeping, OnEnter on the incoming mode, then OnSwitch if set.
func (r *ModeRegistry) Switch(kind ModeKind, arg any) (Mode, error) {
	m, ok := r.modes[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchMode, kind)
	}

	prev := r.current
	r.current = m
	prev.OnLeave()

	switch {
	case !r.previousSet:
		r.previous = prev
		r.previousSet = true
	case isVisual(prev.Kind()) && isVisual(r.previous.Kind()):
		// Consecutive visual sub-mode: leave previous untouched so that
		// leaving the visual family restores what came before it.
	default:
		r.previous = prev
	}

	m.OnEnter(arg)
	if r.OnSwitch != nil {
		r.OnSwitch(prev, m)
	}
	return m, nil
}
