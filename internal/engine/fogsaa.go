package engine

import (
	"container/heap"

	"github.com/bioflow-go/bioflow-core/internal/score"
	"github.com/bioflow-go/bioflow-core/internal/trace"
)

// FOGSAAEngine implements the branch-and-bound affine engine: a
// best-first search over partial alignments, ordered by an
// admissible upper bound on the final score, that returns a single
// optimal path rather than a fully filled matrix. Warnings collected
// during the search (see score.Model.CheckWarnings) are left on the
// struct for the caller to surface; a fresh FOGSAAEngine should be used
// per call.
type FOGSAAEngine struct {
	Warnings []score.Warning
}

type fogsaaNode struct {
	i, j   int
	layer  trace.Bit // MMatrix, IxMatrix or IyMatrix: the state this node arrived in
	score  float64
	bound  float64
	parent *fogsaaNode
	move   trace.Bit // Diagonal, Vertical or Horizontal: the step taken to reach this node
}

type fogsaaHeap struct{ nodes []*fogsaaNode }

func (h fogsaaHeap) Len() int            { return len(h.nodes) }
func (h fogsaaHeap) Less(i, j int) bool  { return h.nodes[i].bound > h.nodes[j].bound }
func (h fogsaaHeap) Swap(i, j int)       { h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i] }
func (h *fogsaaHeap) Push(x interface{}) { h.nodes = append(h.nodes, x.(*fogsaaNode)) }
func (h *fogsaaHeap) Pop() interface{} {
	n := len(h.nodes)
	x := h.nodes[n-1]
	h.nodes = h.nodes[:n-1]
	return x
}

func (e *FOGSAAEngine) Fill(a, b []int, model *score.Model, strand byte) (*trace.Matrix, float64, error) {
	if err := validateStrand(strand); err != nil {
		return nil, 0, err
	}
	m, err := model.ForStrand(strand)
	if err != nil {
		return nil, 0, err
	}
	e.Warnings = m.CheckWarnings()

	nA, nB := len(a), len(b)
	bestPair := m.Match
	if m.Matrix != nil {
		bestPair = m.Matrix.Max()
	} else if m.Mismatch > bestPair {
		bestPair = m.Mismatch
	}
	bestGap := m.Gaps.LeastCostlyExtend()

	bound := func(i, j int, s float64) float64 {
		remA, remB := nA-i, nB-j
		common := remA
		if remB < common {
			common = remB
		}
		diff := remA - remB
		if diff < 0 {
			diff = -diff
		}
		return s + float64(common)*bestPair + float64(diff)*bestGap
	}

	start := &fogsaaNode{i: 0, j: 0, layer: trace.MMatrix, score: 0}
	start.bound = bound(0, 0, 0)

	h := &fogsaaHeap{nodes: []*fogsaaNode{start}}
	heap.Init(h)

	var best *fogsaaNode
	bestScore := negInf

	for h.Len() > 0 {
		node := heap.Pop(h).(*fogsaaNode)
		if best != nil && node.bound <= bestScore && !m.Equal(node.bound, bestScore) {
			break
		}
		if node.i == nA && node.j == nB {
			if node.score > bestScore || m.Equal(node.score, bestScore) {
				if best == nil || node.score > bestScore {
					bestScore = node.score
				}
				best = node
			}
			continue
		}

		if node.i < nA && node.j < nB {
			s, err := cell(m, a, b, node.i+1, node.j+1)
			if err != nil {
				return nil, 0, err
			}
			child := &fogsaaNode{
				i: node.i + 1, j: node.j + 1, layer: trace.MMatrix,
				score: node.score + s, parent: node, move: trace.Diagonal,
			}
			child.bound = bound(child.i, child.j, child.score)
			heap.Push(h, child)
		}
		if node.i < nA {
			ctx := score.ContextFor(node.i+1, node.j, nA, nB)
			var g float64
			if node.layer == trace.IxMatrix {
				g = m.Gaps.ExtendCost(ctx, score.Deletion)
			} else {
				g = m.Gaps.OpenCost(ctx, score.Deletion)
			}
			child := &fogsaaNode{
				i: node.i + 1, j: node.j, layer: trace.IxMatrix,
				score: node.score + g, parent: node, move: trace.Vertical,
			}
			child.bound = bound(child.i, child.j, child.score)
			heap.Push(h, child)
		}
		if node.j < nB {
			ctx := score.ContextFor(node.i, node.j+1, nA, nB)
			var g float64
			if node.layer == trace.IyMatrix {
				g = m.Gaps.ExtendCost(ctx, score.Insertion)
			} else {
				g = m.Gaps.OpenCost(ctx, score.Insertion)
			}
			child := &fogsaaNode{
				i: node.i, j: node.j + 1, layer: trace.IyMatrix,
				score: node.score + g, parent: node, move: trace.Horizontal,
			}
			child.bound = bound(child.i, child.j, child.score)
			heap.Push(h, child)
		}
	}

	tm := trace.New(nA, nB)
	if best == nil {
		tm.NoStart = true
		return tm, 0, nil
	}

	for n := best; n.parent != nil; n = n.parent {
		tm.Bits[n.i][n.j] |= n.move
	}
	tm.Bits[0][0] |= trace.Startpoint
	tm.Bits[nA][nB] |= trace.Endpoint

	return tm, bestScore, nil
}
