// Package config loads thruster tables and steering objectives from a TOML
// document. It exposes its own DTOs and a Build step so the TOML schema
// never leaks into the core package's operations.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"smd"
)

// ThrusterSpec is the TOML-level representation of a thruster table entry.
type ThrusterSpec struct {
	ThrustN float64
	IspS    float64
}

// ObjectiveSpec is the TOML-level representation of a steering objective.
// Kind is the element name (sma, ecc, inc, aop, raan), case-insensitive.
type ObjectiveSpec struct {
	Kind   string
	Target float64
	Tol    float64
}

// Document is the parsed configuration: a thruster table and an objective
// list, plus the propagation step size, ready for Build.
type Document struct {
	StepSeconds float64
	Thrusters   []ThrusterSpec
	Objectives  []ObjectiveSpec
}

// Load reads a TOML document named "conf" from dir via viper.
func Load(dir string) (*Document, error) {
	v := viper.New()
	v.SetConfigName("conf")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading conf.toml in %s: %w", dir, err)
	}

	doc := &Document{StepSeconds: v.GetFloat64("propagation.step_seconds")}
	if doc.StepSeconds == 0 {
		doc.StepSeconds = 10
	}

	var thrusters []ThrusterSpec
	if err := v.UnmarshalKey("thrusters", &thrusters); err != nil {
		return nil, fmt.Errorf("parsing thrusters: %w", err)
	}
	doc.Thrusters = thrusters

	var objectives []ObjectiveSpec
	if err := v.UnmarshalKey("objectives", &objectives); err != nil {
		return nil, fmt.Errorf("parsing objectives: %w", err)
	}
	doc.Objectives = objectives

	return doc, nil
}

// Build converts the parsed TOML DTOs into core smd values, returning a
// DomainError (wrapped) the moment any entry is non-physical.
func (doc *Document) Build() ([]smd.Thruster, []smd.Objective, smd.PropOpts, error) {
	thrusters := make([]smd.Thruster, 0, len(doc.Thrusters))
	for _, ts := range doc.Thrusters {
		t, err := smd.NewThruster(ts.ThrustN, ts.IspS)
		if err != nil {
			return nil, nil, smd.PropOpts{}, fmt.Errorf("thruster %+v: %w", ts, err)
		}
		thrusters = append(thrusters, t)
	}

	objectives := make([]smd.Objective, 0, len(doc.Objectives))
	for _, entry := range doc.Objectives {
		kind, err := parseKind(entry.Kind)
		if err != nil {
			return nil, nil, smd.PropOpts{}, err
		}
		obj, err := smd.NewObjective(kind, entry.Target, entry.Tol)
		if err != nil {
			return nil, nil, smd.PropOpts{}, fmt.Errorf("objective %+v: %w", entry, err)
		}
		objectives = append(objectives, obj)
	}

	opts, err := smd.NewPropOpts(doc.StepSeconds)
	if err != nil {
		return nil, nil, smd.PropOpts{}, err
	}

	return thrusters, objectives, opts, nil
}

func parseKind(s string) (smd.ObjectiveKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SMA":
		return smd.SMA, nil
	case "ECC":
		return smd.ECC, nil
	case "INC":
		return smd.INC, nil
	case "AOP":
		return smd.AOP, nil
	case "RAAN":
		return smd.RAAN, nil
	}
	return 0, fmt.Errorf("unknown objective kind %q", s)
}
