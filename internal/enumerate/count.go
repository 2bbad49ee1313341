package enumerate

import (
	"math"

	"github.com/bioflow-go/bioflow-core/internal/trace"
)

// countPaths returns the exact number of co-optimal paths recorded in tm,
// summed across every ENDPOINT for local mode, and whether the count
// saturated math.MaxInt64/2 along the way. A memoized count over
// (i, j, layer), recursing from each ENDPOINT back toward the start,
// avoids re-walking shared parts of the DAG.
func countPaths(tm *trace.Matrix, local bool) (int64, bool) {
	if tm.NoStart {
		return 0, false
	}

	type key struct {
		i, j int
		l    trace.Bit
	}
	memo := map[key]int64{}
	overflow := false

	const cap64 = math.MaxInt64 / 2

	var count func(f frame) int64
	count = func(f frame) int64 {
		if !f.isRoot {
			if v, ok := memo[key{f.i, f.j, f.layer}]; ok {
				return v
			}
		}
		opts := optionsFor(tm, f)
		if len(opts) == 0 {
			return 1
		}
		var total int64
		for _, opt := range opts {
			total += count(nextFrame(f, opt))
			if total > cap64 {
				overflow = true
				total = cap64
			}
		}
		if !f.isRoot {
			memo[key{f.i, f.j, f.layer}] = total
		}
		return total
	}

	layered := tm.Gotoh != nil || tm.WSB != nil

	if !local {
		root := frame{i: tm.NA, j: tm.NB}
		if layered {
			root.isRoot = true
		}
		total := count(root)
		return clamp(total, overflow)
	}

	var grand int64
	for i := 0; i <= tm.NA; i++ {
		for j := 0; j <= tm.NB; j++ {
			if !tm.Bits[i][j].Has(trace.Endpoint) {
				continue
			}
			f := frame{i: i, j: j}
			if layered {
				f.layer = trace.MMatrix
			}
			grand += count(f)
			if grand > cap64 {
				overflow = true
				grand = cap64
			}
		}
	}
	return clamp(grand, overflow)
}

func clamp(total int64, overflow bool) (int64, bool) {
	if overflow {
		return math.MaxInt64, true
	}
	return total, false
}
