/*package stats summarizes damage fields for run reports and plotting.*/
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of a damage field.
type Summary struct {
	Mean, Std float64
	Min, Max  float64
	// Damaged is the number of points with at least one broken bond.
	Damaged int
}

// Summarize computes the Summary of a damage field. An empty field gives
// the zero Summary.
func Summarize(damage []float64) Summary {
	if len(damage) == 0 {
		return Summary{}
	}

	s := Summary{
		Mean: stat.Mean(damage, nil),
		Std:  stat.StdDev(damage, nil),
		Min:  floats.Min(damage),
		Max:  floats.Max(damage),
	}
	for _, d := range damage {
		if d > 0 {
			s.Damaged++
		}
	}
	return s
}

// BinnedMeans bins the points by xs and returns bin centers together with
// the mean value of ys in each bin. Empty bins are dropped. Used by the
// damage profile plots.
func BinnedMeans(xs, ys []float64, bins int) (centers, means []float64) {
	if len(xs) == 0 || bins <= 0 {
		return nil, nil
	}

	minX, maxX := floats.Min(xs), floats.Max(xs)
	width := (maxX - minX) / float64(bins)
	if width == 0 {
		return []float64{minX}, []float64{stat.Mean(ys, nil)}
	}

	counts := make([]int, bins)
	sums := make([]float64, bins)
	for i, x := range xs {
		idx := int((x - minX) / width)
		if idx == bins {
			idx--
		}
		counts[idx]++
		sums[idx] += ys[i]
	}

	for i := 0; i < bins; i++ {
		if counts[i] == 0 {
			continue
		}
		centers = append(centers, minX+width*(float64(i)+0.5))
		means = append(means, sums[i]/float64(counts[i]))
	}
	return centers, means
}
