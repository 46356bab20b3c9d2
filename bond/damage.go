package bond

import (
	"fmt"

	"github.com/peridyn/porogrid/lattice"
	"github.com/peridyn/porogrid/rand"
)

// PreDamage holds the outcome of the stochastic pre-damage pass.
//
// Bonds is recounted during the pass rather than taken from Totals: the two
// counts come from independent scans and callers cross-check them against
// each other (2*Bonds == sum of the per-particle totals).
type PreDamage struct {
	// Broken[i] is the number of broken bonds incident to particle i.
	Broken []int
	// Bonds and BrokenBonds count every bond once.
	Bonds, BrokenBonds int
}

// RealizedPorosity returns the global broken/total bond ratio. This is a
// statistical outcome of the random draws, not the target value: it only
// converges to the target as the bond count grows.
func (pd *PreDamage) RealizedPorosity() float64 {
	if pd.Bonds == 0 {
		return 0
	}
	return float64(pd.BrokenBonds) / float64(pd.Bonds)
}

// ApplyPreDamage marks each bond of the lattice broken with independent
// probability dPhi, the "uniform porosity" model: one uniform draw in
// [0, 1) per bond, broken iff the draw is below dPhi, no spatial
// correlation and no quota. Each bond is decided exactly once and the
// decision is final.
//
// gen is the caller's randomness capability. Runs with generators of equal
// seed and type produce identical damage.
func ApplyPreDamage(
	lat *lattice.Lattice, delta, dPhi float64, gen *rand.Generator,
) (*PreDamage, error) {
	if dPhi < 0 || dPhi > 1 {
		return nil, fmt.Errorf(
			"Damage probability %g is outside [0, 1].", dPhi,
		)
	}

	pd := &PreDamage{Broken: make([]int, lat.Len())}

	NewIndex(lat, delta).ForEachPair(func(i, j int) {
		pd.Bonds++
		if gen.Uniform(0, 1) < dPhi {
			pd.Broken[i]++
			pd.Broken[j]++
			pd.BrokenBonds++
		}
	})

	return pd, nil
}

// Damage derives the local damage field: damage[i] is the broken fraction
// of particle i's bonds. Isolated particles, which have no bonds at all,
// are undamaged rather than undefined.
func Damage(total, broken []int) []float64 {
	damage := make([]float64, len(total))
	for i := range total {
		if total[i] > 0 {
			damage[i] = float64(broken[i]) / float64(total[i])
		}
	}
	return damage
}
