// Package telemetry samples a trajectory to CSV: epoch, the six osculating
// elements, remaining fuel mass, and seconds elapsed since the first sample,
// one row per sample.
package telemetry

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"smd"
)

// Sampler writes one CSV row per sample: epoch, the six osculating
// elements, remaining fuel mass, and seconds elapsed since the first sample.
type Sampler struct {
	w       *csv.Writer
	wrote   bool
	started time.Time
}

// NewSampler wraps w with a CSV writer and emits the header on first Sample.
func NewSampler(w io.Writer) *Sampler {
	return &Sampler{w: csv.NewWriter(w)}
}

// Sample writes one row for the given spacecraft state.
func (s *Sampler) Sample(epoch smd.Epoch, el smd.Elements, fuelMass float64) error {
	if !s.wrote {
		s.started = epoch.Time()
		if err := s.w.Write([]string{"time", "a", "e", "i", "Omega", "omega", "nu", "fuel", "elapsed_s"}); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		s.wrote = true
	}
	elapsed := epoch.Time().Sub(s.started).Seconds()
	row := []string{
		epoch.String(),
		strconv.FormatFloat(el.SMA, 'g', -1, 64),
		strconv.FormatFloat(el.ECC, 'g', -1, 64),
		strconv.FormatFloat(el.INC, 'g', -1, 64),
		strconv.FormatFloat(el.RAAN, 'g', -1, 64),
		strconv.FormatFloat(el.AOP, 'g', -1, 64),
		strconv.FormatFloat(el.TA, 'g', -1, 64),
		strconv.FormatFloat(fuelMass, 'g', -1, 64),
		strconv.FormatFloat(elapsed, 'g', -1, 64),
	}
	if err := s.w.Write(row); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}
	return nil
}

// Flush flushes any buffered rows to the underlying writer.
func (s *Sampler) Flush() error {
	s.w.Flush()
	return s.w.Error()
}
