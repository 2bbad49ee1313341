package engine

import (
	"github.com/bioflow-go/bioflow-core/internal/score"
	"github.com/bioflow-go/bioflow-core/internal/trace"
)

// NWSW implements the linear-gap engine: Needleman-Wunsch under Global
// mode, Smith-Waterman under Local mode, sharing one
// recurrence because open == extend for every gap kind whenever this
// engine is selected.
type NWSW struct{}

func (NWSW) Fill(a, b []int, model *score.Model, strand byte) (*trace.Matrix, float64, error) {
	if err := validateStrand(strand); err != nil {
		return nil, 0, err
	}
	m, err := model.ForStrand(strand)
	if err != nil {
		return nil, 0, err
	}

	nA, nB := len(a), len(b)
	tm := trace.New(nA, nB)
	local := m.Mode == score.Local

	prev := make([]float64, nB+1)
	curr := make([]float64, nB+1)

	if !local {
		for j := 1; j <= nB; j++ {
			ctx := score.ContextFor(0, j, nA, nB)
			prev[j] = prev[j-1] + m.Gaps.OpenCost(ctx, score.Insertion)
			tm.Bits[0][j] = trace.Horizontal
		}
	}

	var maxScore float64
	var endpoints [][2]int

	markEndpoint := func(i, j int, v float64) {
		switch {
		case len(endpoints) == 0:
			maxScore = v
			tm.Bits[i][j] |= trace.Endpoint
			endpoints = append(endpoints, [2]int{i, j})
		case v > maxScore && !m.Equal(v, maxScore):
			for _, e := range endpoints {
				tm.Bits[e[0]][e[1]] &^= trace.Endpoint
			}
			endpoints = endpoints[:0]
			maxScore = v
			tm.Bits[i][j] |= trace.Endpoint
			endpoints = append(endpoints, [2]int{i, j})
		case m.Equal(v, maxScore):
			tm.Bits[i][j] |= trace.Endpoint
			endpoints = append(endpoints, [2]int{i, j})
		}
	}

	for i := 1; i <= nA; i++ {
		if local {
			curr[0] = 0
		} else {
			ctx := score.ContextFor(i, 0, nA, nB)
			curr[0] = prev[0] + m.Gaps.OpenCost(ctx, score.Deletion)
			tm.Bits[i][0] = trace.Vertical
		}

		for j := 1; j <= nB; j++ {
			s, err := cell(m, a, b, i, j)
			if err != nil {
				return nil, 0, err
			}
			ctx := score.ContextFor(i, j, nA, nB)

			diag := prev[j-1] + s
			up := prev[j] + m.Gaps.OpenCost(ctx, score.Deletion)
			left := curr[j-1] + m.Gaps.OpenCost(ctx, score.Insertion)

			best := diag
			bits := trace.Diagonal
			if up > best && !m.Equal(up, best) {
				best, bits = up, trace.Vertical
			} else if m.Equal(up, best) {
				bits |= trace.Vertical
			}
			if left > best && !m.Equal(left, best) {
				best, bits = left, trace.Horizontal
			} else if m.Equal(left, best) {
				bits |= trace.Horizontal
			}

			if local {
				neighborPositive := prev[j-1] > 0 || prev[j] > 0 || curr[j-1] > 0
				if best <= 0 || m.Equal(best, 0) {
					best = 0
					bits = 0
					if neighborPositive {
						bits |= trace.Startpoint
					}
				}
			}

			curr[j] = best
			tm.Bits[i][j] = bits

			if local {
				markEndpoint(i, j, best)
			}
		}

		prev, curr = curr, prev
	}

	var result float64
	if local {
		result = maxScore
		if len(endpoints) == 0 || maxScore <= 0 || m.Equal(maxScore, 0) {
			tm.NoStart = true
			for _, e := range endpoints {
				tm.Bits[e[0]][e[1]] &^= trace.Endpoint
			}
		}
	} else {
		result = prev[nB]
		tm.Bits[nA][nB] |= trace.Endpoint
		tm.Bits[0][0] |= trace.Startpoint
	}

	return tm, result, nil
}
