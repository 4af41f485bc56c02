package smd

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Epoch is a point in time carried as a calendar time.Time, so the
// propagator can advance by a monotonic seconds count; the Julian date is
// computed from it on demand by JD.
type Epoch struct {
	t time.Time
}

// NewEpoch wraps a calendar time as an Epoch.
func NewEpoch(t time.Time) Epoch {
	return Epoch{t: t}
}

// NewEpochFromJD builds an Epoch from a Julian date.
func NewEpochFromJD(jd float64) Epoch {
	return Epoch{t: julian.JDToTime(jd)}
}

// JD returns the Julian date of this epoch.
func (e Epoch) JD() float64 {
	return julian.TimeToJD(e.t)
}

// Time returns the underlying calendar time.
func (e Epoch) Time() time.Time {
	return e.t
}

// Add returns the epoch advanced by the given number of seconds (may be
// negative).
func (e Epoch) Add(seconds float64) Epoch {
	return Epoch{t: e.t.Add(time.Duration(seconds * float64(time.Second)))}
}

// Sub returns the elapsed seconds between e and other (e - other).
func (e Epoch) Sub(other Epoch) float64 {
	return e.t.Sub(other.t).Seconds()
}

func (e Epoch) String() string {
	return e.t.Format("2006-01-02T15:04:05")
}
