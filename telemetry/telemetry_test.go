package telemetry

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"smd"
)

func TestSamplerWritesHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	s := NewSampler(&buf)
	epoch := smd.NewEpoch(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	el := smd.Elements{SMA: 42164, ECC: 0, INC: 0, RAAN: 0, AOP: 0, TA: 0}

	if err := s.Sample(epoch, el, 67); err != nil {
		t.Fatal(err)
	}
	if err := s.Sample(epoch.Add(10), el, 66.9); err != nil {
		t.Fatal(err)
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if strings.Count(out, "time,a,e,i,Omega,omega,nu,fuel,elapsed_s") != 1 {
		t.Fatalf("expected exactly one header row, got output:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 1 header row + 2 data rows, got %d lines", len(lines))
	}
}
