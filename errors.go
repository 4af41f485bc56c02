package smd

import "fmt"

// DomainError is returned synchronously by constructors when given
// non-physical input. It is never returned mid-propagation.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s=%v %s", e.Field, e.Value, e.Reason)
}

// UndefinedElement records that the controller was asked to steer toward an
// element that is undefined at the current state (AOP/RAAN on a circular or
// equatorial orbit). It is not fatal: the caller treats it as a diagnostic
// and the offending objective contributes zero direction.
type UndefinedElement struct {
	Kind   ObjectiveKind
	Reason string
}

func (e *UndefinedElement) Error() string {
	return fmt.Sprintf("undefined element %s: %s", e.Kind, e.Reason)
}

// DivergenceError is returned by Propagator.PropagateUntil when a derivative
// evaluates to NaN/Inf, or the spacecraft goes sub-surface. It carries the
// offending epoch and the last state that was still valid.
type DivergenceError struct {
	Epoch     Epoch
	LastState []float64
	Reason    string
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("divergence at %s: %s", e.Epoch, e.Reason)
}
