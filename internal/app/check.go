package app

import (
	"context"
	"errors"

	"go.trai.ch/pmk/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ErrCheckFailed is returned when at least one toolchain probe fails.
var ErrCheckFailed = zerr.New("toolchain check failed")

// ProbeKind is the kind of tool a probe looks for.
type ProbeKind string

// Probe kinds.
const (
	ProbeProgram ProbeKind = "program"
	ProbePackage ProbeKind = "package"
)

// Probe is the outcome of one toolchain availability check.
type Probe struct {
	Kind ProbeKind `json:"kind"`
	Name string    `json:"name"`
	Path string    `json:"path,omitempty"`
	Err  error     `json:"-"`
}

// OK reports whether the probe succeeded.
func (p Probe) OK() bool {
	return p.Err == nil
}

// Check probes every compiler and package used by the catalogue.
// Probes run concurrently and every failure is reported.
func (a *App) Check(ctx context.Context) ([]Probe, error) {
	project, err := a.load()
	if err != nil {
		return nil, err
	}

	packages := project.Targets.Packages()
	programs := project.Targets.Compilers()
	if len(packages) > 0 {
		programs = append(programs, domain.PkgConfigProgram)
	}

	probes := make([]Probe, 0, len(programs)+len(packages))
	for _, p := range programs {
		probes = append(probes, Probe{Kind: ProbeProgram, Name: p})
	}
	for _, p := range packages {
		probes = append(probes, Probe{Kind: ProbePackage, Name: p})
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range probes {
		g.Go(func() error {
			probe := &probes[i]
			switch probe.Kind {
			case ProbeProgram:
				probe.Path, probe.Err = a.toolchain.LookPath(probe.Name)
			case ProbePackage:
				probe.Err = a.toolchain.CheckPackage(gctx, probe.Name)
			}
			// Failures stay on the probe.
			return nil
		})
	}
	_ = g.Wait()

	var errs error
	for _, p := range probes {
		if p.Err != nil {
			errs = errors.Join(errs, p.Err)
		}
	}
	if errs != nil {
		return probes, errors.Join(ErrCheckFailed, errs)
	}
	return probes, nil
}
