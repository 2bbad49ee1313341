// Package align is the top-level façade: it owns nothing but sequence
// encoding and algorithm dispatch, delegating the actual DP fill to
// internal/engine and path walking to internal/enumerate.
package align

import (
	"github.com/pkg/errors"

	"github.com/bioflow-go/bioflow-core/internal/engine"
	"github.com/bioflow-go/bioflow-core/internal/enumerate"
	"github.com/bioflow-go/bioflow-core/internal/score"
	"github.com/bioflow-go/bioflow-core/internal/trace"
)

// Aligner binds a Mapping to a scoring Model and exposes two operations:
// Score, for callers who only want the optimal value, and Align, for
// callers who want to walk the co-optimal paths.
type Aligner struct {
	Model   *score.Model
	Mapping *Mapping

	// Warnings is populated after Align/Score runs under FOGSAA mode with
	// the admissibility warnings score.Model.CheckWarnings raised.
	Warnings []score.Warning
}

// New builds an Aligner over a model and symbol mapping.
func New(model *score.Model, mapping *Mapping) *Aligner {
	return &Aligner{Model: model, Mapping: mapping}
}

func (al *Aligner) engineFor(alg score.Algorithm) (engine.Engine, error) {
	switch alg {
	case score.NWSW:
		return engine.NWSW{}, nil
	case score.Gotoh:
		return engine.GotohEngine{}, nil
	case score.WSB:
		return engine.WSBEngine{}, nil
	case score.FogsaaAlgo:
		return &engine.FOGSAAEngine{}, nil
	default:
		return nil, &score.InternalError{Reason: "unrecognized algorithm"}
	}
}

func (al *Aligner) fill(a, b string, strand byte) (*trace.Matrix, float64, error) {
	if err := validateInputs(a, b, strand); err != nil {
		return nil, 0, err
	}
	encA, err := al.Mapping.Encode(a)
	if err != nil {
		return nil, 0, errors.Wrap(err, "encode sequence A")
	}
	encB, err := al.Mapping.Encode(b)
	if err != nil {
		return nil, 0, errors.Wrap(err, "encode sequence B")
	}
	alg, err := al.Model.Algorithm()
	if err != nil {
		return nil, 0, errors.Wrap(err, "select algorithm")
	}
	eng, err := al.engineFor(alg)
	if err != nil {
		return nil, 0, err
	}
	tm, sc, err := eng.Fill(encA, encB, al.Model, strand)
	if err != nil {
		return nil, 0, errors.Wrap(err, "fill matrix")
	}
	if fogsaa, ok := eng.(*engine.FOGSAAEngine); ok {
		al.Warnings = fogsaa.Warnings
	} else {
		al.Warnings = nil
	}
	return tm, sc, nil
}

// Score returns only the optimal alignment score for a and b, skipping
// enumeration entirely.
func (al *Aligner) Score(a, b string, strand byte) (float64, error) {
	_, sc, err := al.fill(a, b, strand)
	return sc, err
}

// Align fills the DP matrix, selects the algorithm implied by the
// model's gap penalties and mode, and returns a lazy enumerator over
// every co-optimal path plus the optimal score.
func (al *Aligner) Align(a, b string, strand byte) (*enumerate.Enumerator, float64, error) {
	tm, sc, err := al.fill(a, b, strand)
	if err != nil {
		return nil, 0, err
	}
	local := al.Model.Mode == score.Local
	return enumerate.New(tm, local, strand, sc), sc, nil
}
