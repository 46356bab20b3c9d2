/*package lattice generates the regular 2D point lattice which discretizes
the simulation domain.

Particles are stored in row-major order: id = j*Nx + i places particle
(i, j) at position (i*dx, j*dx), with rows advancing along the y axis. All
downstream per-point arrays (bond counts, damage) use this ordering.*/
package lattice

import (
	"fmt"
	"math"

	"github.com/peridyn/porogrid/geom"
)

// Lattice is an immutable regular grid of particles covering the domain
// [0, Lx] x [0, Ly] with spacing Dx. It is created once per run and never
// mutated afterwards.
type Lattice struct {
	Nx, Ny int
	Dx     float64

	Particles []geom.Vec
}

// New builds the lattice for a domain of extent Lx by Ly discretized with
// spacing dx. Nx = floor(Lx/dx) + 1 and Ny = floor(Ly/dx) + 1, so a domain
// smaller than dx still gets a single row or column.
func New(Lx, Ly, dx float64) (*Lattice, error) {
	if Lx <= 0 {
		return nil, fmt.Errorf("Domain length Lx = %g must be positive.", Lx)
	} else if Ly <= 0 {
		return nil, fmt.Errorf("Domain length Ly = %g must be positive.", Ly)
	} else if dx <= 0 {
		return nil, fmt.Errorf("Spacing dx = %g must be positive.", dx)
	}

	nx := int(math.Floor(Lx/dx)) + 1
	ny := int(math.Floor(Ly/dx)) + 1

	lat := &Lattice{
		Nx: nx, Ny: ny, Dx: dx,
		Particles: make([]geom.Vec, nx*ny),
	}

	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			id := j*nx + i
			lat.Particles[id][0] = float64(i) * dx
			lat.Particles[id][1] = float64(j) * dx
		}
	}

	return lat, nil
}

// Len returns the number of particles in the lattice.
func (lat *Lattice) Len() int { return len(lat.Particles) }
