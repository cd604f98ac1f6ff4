package spatial

import (
	"goki.dev/mat32/v2"

	"github.com/katalvlaran/reshell/core"
)

// Centroid returns the mean of the given shells' centroids.
// An empty input yields the zero vector.
func Centroid(shells []core.Shell) mat32.Vec3 {
	if len(shells) == 0 {
		return mat32.Vec3{}
	}
	var sum mat32.Vec3
	for _, sh := range shells {
		sum = sum.Add(sh.Centroid)
	}
	return sum.DivScalar(float32(len(shells)))
}

// Spread returns the maximum distance from mean to any member centroid —
// the cluster compactness metric a candidate assembly is validated with.
func Spread(shells []core.Shell, mean mat32.Vec3) float32 {
	var max float32
	for _, sh := range shells {
		if d := sh.Centroid.DistTo(mean); d > max {
			max = d
		}
	}
	return max
}
