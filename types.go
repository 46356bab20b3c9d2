package porogrid

import (
	"fmt"
)

// InvalidParameterError reports a simulation parameter outside its legal
// range. Parameters are checked before anything is built, the run aborts,
// and nothing is silently defaulted.
type InvalidParameterError struct {
	Name  string
	Value float64
	// Want describes the legal range.
	Want string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("Parameter %s = %g is invalid: want %s.",
		e.Name, e.Value, e.Want)
}

// Params are the physical parameters of a single porosity run.
type Params struct {
	// Lx and Ly are the domain extents, Dx the lattice spacing.
	Lx, Ly, Dx float64
	// Phi is the target porosity: the probability that any given bond is
	// broken before the simulation starts.
	Phi float64
	// M is the horizon factor. The horizon radius is M*Dx.
	M float64
}

// Validate checks every parameter and returns an *InvalidParameterError
// for the first one outside its legal range.
func (p *Params) Validate() error {
	if p.Lx <= 0 {
		return &InvalidParameterError{"Lx", p.Lx, "a positive length"}
	} else if p.Ly <= 0 {
		return &InvalidParameterError{"Ly", p.Ly, "a positive length"}
	} else if p.Dx <= 0 {
		return &InvalidParameterError{"Dx", p.Dx, "a positive spacing"}
	} else if p.Phi < 0 || p.Phi > 1 {
		return &InvalidParameterError{"Phi", p.Phi, "a fraction in [0, 1]"}
	} else if p.M <= 0 {
		return &InvalidParameterError{"M", p.M, "a positive horizon factor"}
	}
	return nil
}

// Horizon returns the cutoff radius delta = M*Dx beyond which no bond
// forms.
func (p *Params) Horizon() float64 { return p.M * p.Dx }
