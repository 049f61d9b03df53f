package img2oc

import "sort"

// maxClusterIterations bounds the two-means refinement. The result is not
// guaranteed to be globally optimal, but it is deterministic and cheap.
const maxClusterIterations = 4

// ClusterTwo reduces a cell's pixels to two representative colors.
//
// The centers are seeded with the darkest and brightest pixel by luminance.
// When those are identical the cell is flat and both are returned as-is.
// Otherwise up to maxClusterIterations rounds of two-means are run: each
// pixel joins the closer center (ties go to the dark center), an empty
// cluster keeps its previous center, and iteration stops early once neither
// center moves.
//
// low descends from the dark seed and is used as the cell background; high
// descends from the bright seed and is used as the foreground. An empty
// input returns Black twice.
func ClusterTwo(colors []Color) (low, high Color) {
	if len(colors) == 0 {
		return Black, Black
	}

	sorted := make([]Color, len(colors))
	copy(sorted, colors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Luminance() < sorted[j].Luminance()
	})
	low, high = sorted[0], sorted[len(sorted)-1]
	if low == high {
		return low, high
	}

	clusterA := make([]Color, 0, len(colors))
	clusterB := make([]Color, 0, len(colors))
	for iter := 0; iter < maxClusterIterations; iter++ {
		clusterA, clusterB = clusterA[:0], clusterB[:0]
		for _, c := range colors {
			if c.DistanceSquared(low) <= c.DistanceSquared(high) {
				clusterA = append(clusterA, c)
			} else {
				clusterB = append(clusterB, c)
			}
		}
		if len(clusterA) == 0 {
			clusterA = append(clusterA, low)
		}
		if len(clusterB) == 0 {
			clusterB = append(clusterB, high)
		}

		newLow, newHigh := averageColor(clusterA), averageColor(clusterB)
		if newLow == low && newHigh == high {
			break
		}
		low, high = newLow, newHigh
	}
	return low, high
}
