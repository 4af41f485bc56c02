package smd

import (
	"fmt"
	"math"
)

// PropOpts configures a Propagator: a constant step size across a run.
type PropOpts struct {
	StepSeconds float64
}

// NewPropOpts validates and builds PropOpts. Fixed-step RK4 is the only
// integrator, so the step size is the only option PropOpts carries.
func NewPropOpts(stepSeconds float64) (PropOpts, error) {
	if stepSeconds <= 0 {
		return PropOpts{}, &DomainError{Field: "StepSeconds", Value: stepSeconds, Reason: "must be positive"}
	}
	return PropOpts{StepSeconds: stepSeconds}, nil
}

// Propagator advances a Spacecraft's 7-dimensional state (r, v, m_fuel)
// under two-body gravity plus propulsion via a classical fixed-step RK4.
// It holds no history beyond the current state; a caller wanting a
// trajectory must sample between calls.
type Propagator struct {
	Opts PropOpts
}

// NewPropagator builds a Propagator from the given options.
func NewPropagator(opts PropOpts) *Propagator {
	return &Propagator{Opts: opts}
}

// PropagateUntil performs ⌈Δt/h⌉ full RK4 steps, truncating the final step
// so it lands exactly on the requested elapsed time, and mutates sc in
// place. A NaN/Inf derivative or a sub-surface position halts propagation
// and returns a DivergenceError naming the offending epoch and last-good
// state; sc is left at the last state that was still valid.
func (p *Propagator) PropagateUntil(sc *Spacecraft, dtSeconds float64) error {
	h := p.Opts.StepSeconds
	body := sc.Orbit.Body()
	epoch := sc.Orbit.Epoch()
	state := packState(sc.Orbit, sc.FuelMass)

	var wasAchieved bool
	if sc.Propulsion != nil && sc.Propulsion.Controller != nil {
		wasAchieved = sc.Propulsion.Controller.Achieved(sc.Orbit)
	}

	// keepLastValid moves sc to the last valid state before an early return.
	keepLastValid := func() {
		if o, err := NewOrbitFromRV(state[0:3], state[3:6], body, epoch); err == nil {
			sc.Orbit, sc.FuelMass = o, state[6]
		}
	}

	remaining := dtSeconds
	for remaining > 0 {
		step := h
		if remaining < h {
			step = remaining
		}
		newState, err := rk4Step(state, step, body, epoch, sc.DryMass, sc.Propulsion)
		if err != nil {
			sc.logger.Log("level", "critical", "subsys", "astro", "message", "divergence", "epoch", epoch)
			keepLastValid()
			return &DivergenceError{Epoch: epoch, LastState: state, Reason: err.Error()}
		}
		if newState[6] < 0 {
			newState[6] = 0
		}
		r := newState[0:3]
		if Norm(r) <= body.Radius {
			sc.logger.Log("level", "critical", "subsys", "astro", "message", "sub-surface", "epoch", epoch.Add(step))
			keepLastValid()
			return &DivergenceError{Epoch: epoch.Add(step), LastState: state, Reason: "position at or below body radius"}
		}
		state = newState
		epoch = epoch.Add(step)
		remaining -= step
	}

	newOrbit, err := NewOrbitFromRV(state[0:3], state[3:6], body, epoch)
	if err != nil {
		return &DivergenceError{Epoch: epoch, LastState: state, Reason: err.Error()}
	}
	sc.Orbit = newOrbit
	sc.FuelMass = state[6]
	if sc.FuelMass <= 0 {
		sc.logger.Log("level", "notice", "subsys", "prop", "message", "fuel depleted", "epoch", epoch)
	}
	if !wasAchieved && sc.Propulsion != nil && sc.Propulsion.Controller != nil && sc.Propulsion.Controller.Achieved(sc.Orbit) {
		sc.logger.Log("level", "notice", "subsys", "ctrl", "message", "objective achieved", "epoch", epoch)
	}
	return nil
}

// packState flattens an orbit and fuel mass into the 7-dimensional state
// vector the integrator works with.
func packState(o *Orbit, mFuel float64) []float64 {
	s := make([]float64, 7)
	copy(s[0:3], o.R())
	copy(s[3:6], o.V())
	s[6] = mFuel
	return s
}

// stateDerivative evaluates the 7-dimensional derivative at the given
// state. mFuel is clamped to non-negative before the propulsion stack sees
// it, so a transient negative intra-step value (corrected post-step) does
// not spuriously enable thrust.
func stateDerivative(state []float64, body Body, epoch Epoch, dryMass float64, prop *Propulsion) ([]float64, error) {
	r := state[0:3]
	v := state[3:6]
	mFuel := state[6]
	if mFuel < 0 {
		mFuel = 0
	}
	o, err := NewOrbitFromRV(r, v, body, epoch)
	if err != nil {
		return nil, err
	}
	rDot, vDot, mDot := derivative(o, dryMass+mFuel, mFuel, prop)

	out := make([]float64, 7)
	copy(out[0:3], rDot)
	copy(out[3:6], vDot)
	out[6] = mDot
	for _, x := range out {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("non-finite derivative at %s", epoch)
		}
	}
	return out, nil
}

// rk4Step advances state by one fixed step h with the classical four-stage
// Runge-Kutta weights, evaluating k1..k4 in order with the state held at
// the step's start epoch plus the stage's fractional offset. Mass is
// integrated with the same weights as position/velocity so the mass/
// kinematic coupling stays consistent to fourth order.
func rk4Step(state []float64, h float64, body Body, epoch Epoch, dryMass float64, prop *Propulsion) ([]float64, error) {
	const (
		half     = 0.5
		oneSixth = 1.0 / 6.0
		oneThird = 1.0 / 3.0
	)

	k1, err := stateDerivative(state, body, epoch, dryMass, prop)
	if err != nil {
		return nil, err
	}
	t2 := addScaled(state, k1, h*half)
	k2, err := stateDerivative(t2, body, epoch.Add(h*half), dryMass, prop)
	if err != nil {
		return nil, err
	}
	t3 := addScaled(state, k2, h*half)
	k3, err := stateDerivative(t3, body, epoch.Add(h*half), dryMass, prop)
	if err != nil {
		return nil, err
	}
	t4 := addScaled(state, k3, h)
	k4, err := stateDerivative(t4, body, epoch.Add(h), dryMass, prop)
	if err != nil {
		return nil, err
	}

	newState := make([]float64, len(state))
	for i := range state {
		newState[i] = state[i] + h*(oneSixth*(k1[i]+k4[i])+oneThird*(k2[i]+k3[i]))
	}
	return newState, nil
}

// addScaled returns state + scale*deriv, element-wise.
func addScaled(state, deriv []float64, scale float64) []float64 {
	out := make([]float64, len(state))
	for i := range state {
		out[i] = state[i] + scale*deriv[i]
	}
	return out
}
