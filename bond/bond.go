/*package bond enumerates peridynamic bonds and tracks their damage state.

A bond is an unordered pair of distinct particles whose squared distance is
at most delta^2, where delta is the horizon radius. Pairs are always visited
with i < j and each bond is visited exactly once. The squared comparison is
part of the semantics: the boundary case of a pair at distance exactly delta
is a bond.*/
package bond

import (
	"math"

	"github.com/peridyn/porogrid/geom"
	"github.com/peridyn/porogrid/lattice"
)

// ForEachPair visits every bond of the lattice exactly once, in increasing
// (i, j) order, by scanning all particle pairs. This is the reference
// enumeration: O(N^2), no index, no allocation.
func ForEachPair(lat *lattice.Lattice, delta float64, f func(i, j int)) {
	n := lat.Len()
	delta2 := delta * delta
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if geom.Dist2(&lat.Particles[i], &lat.Particles[j]) <= delta2 {
				f(i, j)
			}
		}
	}
}

// Index is a uniform cell grid over the lattice with cell width delta. Any
// two particles within delta of each other sit in the same or adjacent
// cells, so a pair scan only needs to examine the 3x3 cell neighborhood.
// The bond set it visits is identical to ForEachPair's.
type Index struct {
	lat    *lattice.Lattice
	delta2 float64

	cw             float64
	cellsX, cellsY int
	cells          [][]int
}

// NewIndex builds the cell grid for the given lattice and horizon.
func NewIndex(lat *lattice.Lattice, delta float64) *Index {
	// Neighborhood coverage only needs a cell width of at least delta, so
	// a horizon below the spacing clamps to the spacing. This bounds the
	// cell count by the particle count.
	cw := delta
	if cw < lat.Dx {
		cw = lat.Dx
	}

	idx := &Index{
		lat:    lat,
		delta2: delta * delta,
		cw:     cw,
	}

	maxX := float64(lat.Nx-1) * lat.Dx
	maxY := float64(lat.Ny-1) * lat.Dx
	idx.cellsX = int(math.Floor(maxX/idx.cw)) + 1
	idx.cellsY = int(math.Floor(maxY/idx.cw)) + 1

	idx.cells = make([][]int, idx.cellsX*idx.cellsY)
	for i := range lat.Particles {
		c := idx.cellOf(&lat.Particles[i])
		idx.cells[c] = append(idx.cells[c], i)
	}

	return idx
}

func (idx *Index) cellOf(v *geom.Vec) int {
	cx := int(v[0] / idx.cw)
	cy := int(v[1] / idx.cw)
	// Particles on the far domain edge land exactly on the cell boundary.
	if cx == idx.cellsX {
		cx--
	}
	if cy == idx.cellsY {
		cy--
	}
	return cy*idx.cellsX + cx
}

// ForEachPair visits the same bond set as the package-level ForEachPair,
// anchored at the smaller particle index. Visit order differs from the
// brute-force scan, but every bond is still visited exactly once.
func (idx *Index) ForEachPair(f func(i, j int)) {
	lat := idx.lat
	for i := range lat.Particles {
		cx, cy := idx.cellCoords(&lat.Particles[i])
		for dy := -1; dy <= 1; dy++ {
			y := cy + dy
			if y < 0 || y >= idx.cellsY {
				continue
			}
			for dx := -1; dx <= 1; dx++ {
				x := cx + dx
				if x < 0 || x >= idx.cellsX {
					continue
				}
				for _, j := range idx.cells[y*idx.cellsX+x] {
					if j <= i {
						continue
					}
					d2 := geom.Dist2(&lat.Particles[i], &lat.Particles[j])
					if d2 <= idx.delta2 {
						f(i, j)
					}
				}
			}
		}
	}
}

func (idx *Index) cellCoords(v *geom.Vec) (cx, cy int) {
	c := idx.cellOf(v)
	return c % idx.cellsX, c / idx.cellsX
}

// Totals returns the number of bonds incident to each particle. Both
// endpoints of a bond are counted.
func Totals(lat *lattice.Lattice, delta float64) []int {
	total := make([]int, lat.Len())
	NewIndex(lat, delta).ForEachPair(func(i, j int) {
		total[i]++
		total[j]++
	})
	return total
}

// TotalsWorkers computes the same per-particle totals as Totals using the
// given number of goroutines. Bonds are partitioned by their anchor (the
// smaller particle index): worker w owns anchors i with i % workers == w
// and accumulates into a private array, so no counter is shared. The
// partial arrays are summed once all workers finish.
func TotalsWorkers(lat *lattice.Lattice, delta float64, workers int) []int {
	if workers <= 1 {
		return Totals(lat, delta)
	}

	idx := NewIndex(lat, delta)
	n := lat.Len()

	partials := make([][]int, workers)
	out := make(chan int, workers)
	for w := 0; w < workers; w++ {
		partials[w] = make([]int, n)
		go func(w int) {
			part := partials[w]
			idx.forEachPairOwned(w, workers, func(i, j int) {
				part[i]++
				part[j]++
			})
			out <- w
		}(w)
	}
	for w := 0; w < workers; w++ {
		<-out
	}

	total := partials[0]
	for w := 1; w < workers; w++ {
		for i, c := range partials[w] {
			total[i] += c
		}
	}
	return total
}

// forEachPairOwned visits the bonds whose anchor i satisfies
// i % workers == w.
func (idx *Index) forEachPairOwned(w, workers int, f func(i, j int)) {
	lat := idx.lat
	for i := range lat.Particles {
		if i%workers != w {
			continue
		}
		cx, cy := idx.cellCoords(&lat.Particles[i])
		for dy := -1; dy <= 1; dy++ {
			y := cy + dy
			if y < 0 || y >= idx.cellsY {
				continue
			}
			for dx := -1; dx <= 1; dx++ {
				x := cx + dx
				if x < 0 || x >= idx.cellsX {
					continue
				}
				for _, j := range idx.cells[y*idx.cellsX+x] {
					if j <= i {
						continue
					}
					d2 := geom.Dist2(&lat.Particles[i], &lat.Particles[j])
					if d2 <= idx.delta2 {
						f(i, j)
					}
				}
			}
		}
	}
}
