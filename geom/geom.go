/*package geom provides the 2D geometric primitives shared by the porogrid
packages.*/
package geom

// Vec is a point in the simulation plane.
type Vec [2]float64

// Dist2 returns the squared Euclidean distance between v1 and v2. Bond
// predicates compare squared distances directly so that no square root is
// taken in the pair loop.
func Dist2(v1, v2 *Vec) float64 {
	dx := v1[0] - v2[0]
	dy := v1[1] - v2[1]
	return dx*dx + dy*dy
}
