// Package smd implements a closed-loop low-thrust orbit transfer engine: a
// fixed-step propagator integrates a spacecraft's Cartesian state under
// two-body gravity while the Ruggiero locally-optimal control law
// continuously re-aims a finite-thrust propulsion system at a set of
// Keplerian-element objectives, draining a fuel reservoir as it burns.
package smd
