// Package checklist holds the incoming and exit diagnostic checklists of an order.
//
// Each mode is an explicit state value ({mode, flags, power flag}) moved forward by
// the pure Toggle transition. The power flag cascades: switching it overwrites
// every flag of that mode, and while it is off the other checks are disabled for
// interaction (their values are kept, toggles are ignored).
package checklist

import (
	"errors"
	"fmt"

	"repair_desk/internal/domain/entities"
)

var (
	ErrUnknownCheck = errors.New("unknown diagnostic check")
	ErrUnknownMode  = errors.New("unknown diagnostic mode")
)

// Flags maps every check of a mode to its active flag.
type Flags map[entities.CheckID]bool

func (f Flags) clone() Flags {
	out := make(Flags, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// State is the checklist of one mode.
type State struct {
	Mode      entities.DiagnosticMode
	Flags     Flags
	PowerFlag entities.CheckID
}

// incomingInactive are the checks that start off at intake.
var incomingInactive = map[entities.CheckID]bool{
	entities.CheckGlassBroken:   true,
	entities.CheckFrameDetached: true,
	entities.CheckPowerOn:       true,
}

// NewState returns the default checklist of a mode: at intake everything is
// assumed working except the declared inactive checks, at exit nothing is
// verified yet.
func NewState(mode entities.DiagnosticMode) State {
	flags := make(Flags, len(entities.AllChecks))
	for _, id := range entities.AllChecks {
		flags[id] = mode == entities.DiagnosticModeIncoming && !incomingInactive[id]
	}
	return State{Mode: mode, Flags: flags, PowerFlag: entities.PowerCheck}
}

func (s State) PoweredOn() bool {
	return s.Flags[s.PowerFlag]
}

// InteractionDisabled reports whether id cannot be toggled right now.
func (s State) InteractionDisabled(id entities.CheckID) bool {
	return id != s.PowerFlag && !s.PoweredOn()
}

// Toggle is the transition function. The returned state never shares its flag
// map with s. An unknown id returns s unchanged together with ErrUnknownCheck.
func Toggle(s State, id entities.CheckID) (State, error) {
	if !id.IsValid() {
		return s, fmt.Errorf("%w: %s", ErrUnknownCheck, id)
	}
	next := State{Mode: s.Mode, Flags: s.Flags.clone(), PowerFlag: s.PowerFlag}
	switch {
	case id == s.PowerFlag:
		v := !s.Flags[id]
		for _, check := range entities.AllChecks {
			next.Flags[check] = v
		}
	case s.InteractionDisabled(id):
		// ignored: the desk may race a toggle against a power-off
	default:
		next.Flags[id] = !s.Flags[id]
	}
	return next, nil
}

// Checklist pairs the two independent modes of an order.
type Checklist struct {
	Incoming State
	Exit     State
}

func New() *Checklist {
	return &Checklist{
		Incoming: NewState(entities.DiagnosticModeIncoming),
		Exit:     NewState(entities.DiagnosticModeExit),
	}
}

func (c *Checklist) State(mode entities.DiagnosticMode) (State, error) {
	switch mode {
	case entities.DiagnosticModeIncoming:
		return c.Incoming, nil
	case entities.DiagnosticModeExit:
		return c.Exit, nil
	}
	return State{}, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
}

// Toggle applies the transition to one mode only. changed is false when the
// toggle was ignored.
func (c *Checklist) Toggle(mode entities.DiagnosticMode, id entities.CheckID) (changed bool, err error) {
	cur, err := c.State(mode)
	if err != nil {
		return false, err
	}
	next, err := Toggle(cur, id)
	if err != nil {
		return false, err
	}
	c.set(next)
	return next.Flags[id] != cur.Flags[id], nil
}

// Hydrate replaces one mode from its remote record.
func (c *Checklist) Hydrate(mode entities.DiagnosticMode, remote map[string]bool) error {
	s, err := Hydrate(mode, remote)
	if err != nil {
		return err
	}
	c.set(s)
	return nil
}

func (c *Checklist) set(s State) {
	if s.Mode == entities.DiagnosticModeExit {
		c.Exit = s
		return
	}
	c.Incoming = s
}
