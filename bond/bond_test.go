package bond

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peridyn/porogrid/lattice"
)

type pair struct{ i, j int }

func brutePairs(lat *lattice.Lattice, delta float64) map[pair]int {
	set := map[pair]int{}
	ForEachPair(lat, delta, func(i, j int) { set[pair{i, j}]++ })
	return set
}

func indexPairs(lat *lattice.Lattice, delta float64) map[pair]int {
	set := map[pair]int{}
	NewIndex(lat, delta).ForEachPair(func(i, j int) { set[pair{i, j}]++ })
	return set
}

func mustLattice(t *testing.T, Lx, Ly, dx float64) *lattice.Lattice {
	lat, err := lattice.New(Lx, Ly, dx)
	if err != nil {
		t.Fatal(err.Error())
	}
	return lat
}

func TestBoundaryScenario(t *testing.T) {
	// Lx = Ly = 1, dx = 1 gives the 2x2 unit square. With m = 1.5 the
	// horizon is 1.5 and delta^2 = 2.25, so even the diagonals (squared
	// distance 2) bond: all 6 pairs form.
	lat := mustLattice(t, 1, 1, 1)
	delta := 1.5 * 1.0

	set := brutePairs(lat, delta)
	assert.Equal(t, 6, len(set))

	total := Totals(lat, delta)
	assert.Equal(t, []int{3, 3, 3, 3}, total)
}

func TestClosedBoundary(t *testing.T) {
	// With m = 1 the horizon equals the spacing: pairs at distance
	// exactly delta are bonds (closed interval), diagonals are not.
	lat := mustLattice(t, 1, 1, 1)
	set := brutePairs(lat, 1.0)

	want := map[pair]int{
		{0, 1}: 1, {0, 2}: 1, {1, 3}: 1, {2, 3}: 1,
	}
	assert.Equal(t, want, set)
	assert.Equal(t, []int{2, 2, 2, 2}, Totals(lat, 1.0))
}

func TestNoSelfOrDoubleCounts(t *testing.T) {
	lat := mustLattice(t, 2, 2, 0.5)
	for p, n := range brutePairs(lat, 1.1) {
		assert.True(t, p.i < p.j, "pair (%d, %d) out of order", p.i, p.j)
		assert.Equal(t, 1, n, "pair (%d, %d) visited %d times", p.i, p.j, n)
	}
	for p, n := range indexPairs(lat, 1.1) {
		assert.True(t, p.i < p.j, "pair (%d, %d) out of order", p.i, p.j)
		assert.Equal(t, 1, n, "pair (%d, %d) visited %d times", p.i, p.j, n)
	}
}

func TestIndexMatchesBruteForce(t *testing.T) {
	tests := []struct{ Lx, Ly, dx, m float64 }{
		{1, 1, 1, 1.5},
		{3.3, 2.1, 0.37, 2.15},
		{1, 5, 0.5, 1},
		{5, 1, 0.5, 3.01},
		{0.4, 0.4, 1, 3},     // single particle
		{2, 2, 0.25, 0.5},    // horizon below spacing: no bonds
		{10, 10, 1, 1e-9},    // horizon vanishingly small
		{10, 10, 1, 100},     // horizon beyond the whole domain
		{1.7, 1.7, 0.13, 3},
	}

	for i := range tests {
		test := &tests[i]
		lat := mustLattice(t, test.Lx, test.Ly, test.dx)
		delta := test.m * test.dx

		brute := brutePairs(lat, delta)
		indexed := indexPairs(lat, delta)
		assert.Equal(t, brute, indexed, "test %d", i)
	}
}

func TestTinyHorizonTotals(t *testing.T) {
	// A horizon far below the spacing is still a valid input: every
	// particle is isolated. The cell index must not size its grid off the
	// raw horizon here, or building it blows up long before the scan.
	lat := mustLattice(t, 10, 10, 1)

	for i, c := range Totals(lat, 1e-9) {
		assert.Equal(t, 0, c, "particle %d", i)
	}
}

func TestTotalsSumCheck(t *testing.T) {
	lat := mustLattice(t, 4, 3, 0.5)
	delta := 3 * 0.5

	total := Totals(lat, delta)
	bonds := len(brutePairs(lat, delta))

	sum := 0
	for _, c := range total {
		sum += c
	}
	assert.Equal(t, 2*bonds, sum)
}

func TestSquareDomainSymmetry(t *testing.T) {
	// On a square lattice the bond set must be invariant under swapping
	// the roles of the two axes. Transposing particle id
	// id = j*Nx + i -> i*Nx + j maps the lattice onto itself.
	lat := mustLattice(t, 2, 2, 0.4)
	assert.Equal(t, lat.Nx, lat.Ny)
	delta := 2.2 * 0.4

	set := brutePairs(lat, delta)
	transposed := map[pair]int{}
	for p := range set {
		ti := (p.i%lat.Nx)*lat.Nx + p.i/lat.Nx
		tj := (p.j%lat.Nx)*lat.Nx + p.j/lat.Nx
		if ti > tj {
			ti, tj = tj, ti
		}
		transposed[pair{ti, tj}]++
	}
	assert.Equal(t, set, transposed)
}

func TestTotalsWorkers(t *testing.T) {
	lat := mustLattice(t, 6, 4, 0.5)
	delta := 3 * 0.5

	want := Totals(lat, delta)
	for _, workers := range []int{1, 2, 3, 4, 7, 16} {
		got := TotalsWorkers(lat, delta, workers)
		assert.Equal(t, want, got, "%d workers", workers)
	}
}

func TestEnumerationIdempotent(t *testing.T) {
	lat := mustLattice(t, 3, 3, 0.7)
	delta := 2.5 * 0.7

	assert.Equal(t, brutePairs(lat, delta), brutePairs(lat, delta))
	assert.Equal(t, Totals(lat, delta), Totals(lat, delta))
}

func benchmarkLattice(b *testing.B) *lattice.Lattice {
	lat, err := lattice.New(20, 20, 0.25)
	if err != nil {
		b.Fatal(err.Error())
	}
	return lat
}

func BenchmarkForEachPair(b *testing.B) {
	lat := benchmarkLattice(b)
	delta := 3 * 0.25
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		ForEachPair(lat, delta, func(i, j int) { n++ })
	}
}

func BenchmarkIndexForEachPair(b *testing.B) {
	lat := benchmarkLattice(b)
	delta := 3 * 0.25
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		NewIndex(lat, delta).ForEachPair(func(i, j int) { n++ })
	}
}
