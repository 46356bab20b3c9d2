/*package porogrid generates pre-damaged 2D point lattices for peridynamic
simulations.

A run builds a regular lattice over the domain, enumerates every bond
(particle pair within the horizon radius), breaks a target fraction of
bonds by independent random draws, derives the per-point damage field, and
writes the result as a VTK point cloud. Each run owns all of its state:
nothing persists or is shared between runs.*/
package porogrid

import (
	"fmt"
	"log"

	"github.com/peridyn/porogrid/bond"
	"github.com/peridyn/porogrid/io"
	"github.com/peridyn/porogrid/lattice"
	"github.com/peridyn/porogrid/rand"
	"github.com/peridyn/porogrid/stats"
)

// criticalPorosity normalizes the target porosity into a per-bond breakage
// probability: dPhi = Phi / criticalPorosity. Fixed at 1, so the two are
// equal.
const criticalPorosity = 1.0

// Options control the non-physical parts of a run.
type Options struct {
	// Gen supplies the random draws of the pre-damage pass. If nil, a
	// generator seeded from the clock is used, which makes the run
	// non-reproducible.
	Gen *rand.Generator
	// Threads is the number of goroutines used by the neighbor count.
	// Values below 1 mean 1.
	Threads int
	// Output overrides the parameter-derived output file name.
	Output string
	// TableFile, if set, is where the x/y/damage column dump is written.
	TableFile string
}

// Result collects everything a finished run produced.
type Result struct {
	Lattice *lattice.Lattice
	// Totals[i] is the number of bonds incident to particle i.
	Totals []int
	Pre    *bond.PreDamage
	// Damage[i] is the broken fraction of particle i's bonds, in [0, 1].
	Damage  []float64
	Summary stats.Summary
	// OutputPath is where the VTK file was written.
	OutputPath string
}

// Run executes one full simulation: validate, build the lattice, count
// bonds, apply pre-damage, derive the damage field, and write the output
// file. Phases run sequentially to completion; there are no retries, and
// any error is terminal for the run.
func Run(p Params, opt Options) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	lat, err := lattice.New(p.Lx, p.Ly, p.Dx)
	if err != nil {
		return nil, err
	}
	log.Printf("Built lattice: Nx = %d, Ny = %d, total particles N = %d",
		lat.Nx, lat.Ny, lat.Len())

	delta := p.Horizon()
	threads := opt.Threads
	if threads < 1 {
		threads = 1
	}

	log.Printf("Computing neighbor counts...")
	totals := bond.TotalsWorkers(lat, delta, threads)

	gen := opt.Gen
	if gen == nil {
		gen = rand.NewTimeSeed(rand.Default)
	}

	log.Printf("Applying pre-damage (uniform porosity)...")
	dPhi := p.Phi / criticalPorosity
	pre, err := bond.ApplyPreDamage(lat, delta, dPhi, gen)
	if err != nil {
		return nil, err
	}

	// The pre-damage pass recounts bonds on its own. The two counts come
	// from separate scans, so a disagreement means an enumeration bug.
	sum := 0
	for _, c := range totals {
		sum += c
	}
	if 2*pre.Bonds != sum {
		return nil, fmt.Errorf(
			"Bond count mismatch: damage pass saw %d bonds, "+
				"neighbor count saw %d.", pre.Bonds, sum/2,
		)
	}

	damage := bond.Damage(totals, pre.Broken)

	res := &Result{
		Lattice: lat,
		Totals:  totals,
		Pre:     pre,
		Damage:  damage,
		Summary: stats.Summarize(damage),
	}

	log.Printf("Total bonds (before damage): %d", pre.Bonds)
	log.Printf("Broken bonds (after damage): %d", pre.BrokenBonds)
	log.Printf("Realized global porosity (bond-based) ~ %g",
		pre.RealizedPorosity())
	log.Printf("Mean local damage: %g (std %g)",
		res.Summary.Mean, res.Summary.Std)

	out := opt.Output
	if out == "" {
		out = io.OutputName(p.Lx, p.Phi)
	}
	if err := io.WritePolyData(out, lat, damage); err != nil {
		return nil, err
	}
	res.OutputPath = out
	log.Printf("VTK file written to %s", out)

	if opt.TableFile != "" {
		if err := io.WriteDamageTable(opt.TableFile, lat, damage); err != nil {
			return nil, err
		}
		log.Printf("Damage table written to %s", opt.TableFile)
	}

	return res, nil
}
