package smd

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// Spacecraft is the propagated tuple (orbit, fuel mass) together with a
// fixed dry mass and the propulsion handle that drains the fuel. The
// propagator exclusively mutates a Spacecraft for the duration of a call;
// outside of that it should not be aliased into another mutation lineage.
type Spacecraft struct {
	Orbit      *Orbit
	DryMass    float64
	FuelMass   float64
	Propulsion *Propulsion

	logger kitlog.Logger
}

// NewSpacecraft validates and assembles a Spacecraft. Propulsion may be nil
// for a ballistic (coasting) spacecraft.
func NewSpacecraft(orbit *Orbit, dryMass, fuelMass float64, propulsion *Propulsion) (*Spacecraft, error) {
	if dryMass <= 0 {
		return nil, &DomainError{Field: "DryMass", Value: dryMass, Reason: "must be positive"}
	}
	if fuelMass < 0 {
		return nil, &DomainError{Field: "FuelMass", Value: fuelMass, Reason: "must be non-negative"}
	}
	return &Spacecraft{
		Orbit: orbit, DryMass: dryMass, FuelMass: fuelMass, Propulsion: propulsion,
		logger: defaultLogger(),
	}, nil
}

// TotalMass returns dry mass plus current fuel mass.
func (sc *Spacecraft) TotalMass() float64 {
	return sc.DryMass + sc.FuelMass
}

// SetLogger overrides the spacecraft's logger.
func (sc *Spacecraft) SetLogger(l kitlog.Logger) {
	sc.logger = l
}

func defaultLogger() kitlog.Logger {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	return kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
}
