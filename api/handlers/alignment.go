package handlers

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/bioflow-go/bioflow-core/internal/align"
	"github.com/bioflow-go/bioflow-core/internal/alignment"
	"github.com/bioflow-go/bioflow-core/internal/enumerate"
	"github.com/bioflow-go/bioflow-core/internal/score"
	"github.com/bioflow-go/bioflow-core/pkg/bioflow"
)

// AlignmentRequest represents an alignment request.
type AlignmentRequest struct {
	Sequence1 string `json:"sequence1"`
	Sequence2 string `json:"sequence2"`
}

// AlignmentResponse represents the response for alignment.
type AlignmentResponse struct {
	AlignedSeq1 string  `json:"aligned_seq1"`
	AlignedSeq2 string  `json:"aligned_seq2"`
	Score       int     `json:"score"`
	Identity    float64 `json:"identity"`
	CIGAR       string  `json:"cigar"`
	Matches     int     `json:"matches"`
	Mismatches  int     `json:"mismatches"`
	Gaps        int     `json:"gaps"`
}

// LocalAlignHandler handles local alignment requests.
func LocalAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seq1, err := bioflow.NewSequence(req.Sequence1)
	if err != nil {
		http.Error(w, `{"error": "sequence1: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	seq2, err := bioflow.NewSequence(req.Sequence2)
	if err != nil {
		http.Error(w, `{"error": "sequence2: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	alignment, err := bioflow.Align(seq1, seq2)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AlignmentResponse{
		AlignedSeq1: alignment.AlignedSeq1,
		AlignedSeq2: alignment.AlignedSeq2,
		Score:       alignment.Score,
		Identity:    alignment.Identity,
		CIGAR:       alignment.ToCIGAR(),
		Matches:     alignment.MatchCount(),
		Mismatches:  alignment.MismatchCount(),
		Gaps:        alignment.TotalGaps(),
	})
}

// GlobalAlignHandler handles global alignment requests.
func GlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seq1, err := bioflow.NewSequence(req.Sequence1)
	if err != nil {
		http.Error(w, `{"error": "sequence1: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	seq2, err := bioflow.NewSequence(req.Sequence2)
	if err != nil {
		http.Error(w, `{"error": "sequence2: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	alignment, err := bioflow.AlignGlobal(seq1, seq2)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AlignmentResponse{
		AlignedSeq1: alignment.AlignedSeq1,
		AlignedSeq2: alignment.AlignedSeq2,
		Score:       alignment.Score,
		Identity:    alignment.Identity,
		CIGAR:       alignment.ToCIGAR(),
		Matches:     alignment.MatchCount(),
		Mismatches:  alignment.MismatchCount(),
		Gaps:        alignment.TotalGaps(),
	})
}

// SemiGlobalAlignHandler handles semi-global alignment requests, where
// sequence1 is aligned end to end against sequence2 without penalizing
// gaps that hang off either end of sequence2.
func SemiGlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seq1, err := bioflow.NewSequence(req.Sequence1)
	if err != nil {
		http.Error(w, `{"error": "sequence1: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	seq2, err := bioflow.NewSequence(req.Sequence2)
	if err != nil {
		http.Error(w, `{"error": "sequence2: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	alignment, err := bioflow.AlignSemiGlobal(seq1, seq2)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AlignmentResponse{
		AlignedSeq1: alignment.AlignedSeq1,
		AlignedSeq2: alignment.AlignedSeq2,
		Score:       alignment.Score,
		Identity:    alignment.Identity,
		CIGAR:       alignment.ToCIGAR(),
		Matches:     alignment.MatchCount(),
		Mismatches:  alignment.MismatchCount(),
		Gaps:        alignment.TotalGaps(),
	})
}

// ScoreResponse represents the response for alignment score.
type ScoreResponse struct {
	Score int `json:"score"`
}

// AlignmentScoreHandler handles alignment score requests.
func AlignmentScoreHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seq1, err := bioflow.NewSequence(req.Sequence1)
	if err != nil {
		http.Error(w, `{"error": "sequence1: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	seq2, err := bioflow.NewSequence(req.Sequence2)
	if err != nil {
		http.Error(w, `{"error": "sequence2: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	alignment, err := bioflow.Align(seq1, seq2)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScoreResponse{Score: alignment.Score})
}

// CustomAlignRequest is AlignmentRequest plus the scoring knobs
// LocalAlignHandler/GlobalAlignHandler hide behind bioflow's default DNA
// matrix, letting a caller reach Gotoh's affine gaps or FOGSAA's
// branch-and-bound search directly.
type CustomAlignRequest struct {
	Sequence1 string  `json:"sequence1"`
	Sequence2 string  `json:"sequence2"`
	Mode      string  `json:"mode"` // "global", "local", or "fogsaa"
	Match     float64 `json:"match"`
	Mismatch  float64 `json:"mismatch"`
	GapOpen   float64 `json:"gap_open"`
	GapExtend float64 `json:"gap_extend"`
}

// CustomAlignResponse adds the algorithm the model selected and any
// FOGSAA admissibility warnings to AlignmentResponse's fields.
type CustomAlignResponse struct {
	AlignedSeq1 string   `json:"aligned_seq1"`
	AlignedSeq2 string   `json:"aligned_seq2"`
	Score       float64  `json:"score"`
	Identity    float64  `json:"identity"`
	CIGAR       string   `json:"cigar"`
	Algorithm   string   `json:"algorithm"`
	RowsA       []int    `json:"rows_a"`
	RowsB       []int    `json:"rows_b"`
	Warnings    []string `json:"warnings,omitempty"`
}

// CustomAlignHandler runs the aligner façade directly under a
// caller-chosen score.Model, exercising Gotoh and FOGSAA in addition to
// the NW-SW path LocalAlignHandler/GlobalAlignHandler exercise through
// bioflow.Align. WSB is selected only by a gap callback, which this
// handler does not set.
func CustomAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req CustomAlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	mode, err := score.ParseMode(req.Mode)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	m := score.NewModel()
	m.SetMatch(req.Match)
	m.SetMismatch(req.Mismatch)
	for ctx := score.Internal; ctx <= score.Right; ctx++ {
		for _, side := range [...]score.GapSide{score.Insertion, score.Deletion} {
			m.SetGap(ctx, side, score.Open, req.GapOpen)
			m.SetGap(ctx, side, score.Extend, req.GapExtend)
		}
	}
	m.SetMode(mode)

	aligner := align.New(m, align.DefaultDNAMapping())
	enum, sc, err := aligner.Align(req.Sequence1, req.Sequence2, '+')
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	path, ok, err := enum.Next()
	if err != nil || !ok {
		http.Error(w, `{"error": "no alignment path found"}`, http.StatusUnprocessableEntity)
		return
	}

	startA, startB := enum.StartPos()
	pairs := enumerate.Positions(path, startA, startB, '+', len(req.Sequence2))

	aligned1 := make([]byte, len(pairs))
	aligned2 := make([]byte, len(pairs))
	for i, p := range pairs {
		if p.A >= 0 {
			aligned1[i] = req.Sequence1[p.A]
		} else {
			aligned1[i] = '-'
		}
		if p.B >= 0 {
			aligned2[i] = req.Sequence2[p.B]
		} else {
			aligned2[i] = '-'
		}
	}

	alignType := alignment.Global
	if mode == score.Local {
		alignType = alignment.Local
	}

	var totalA, totalB int
	for _, st := range path.Steps {
		totalA += st.ALen
		totalB += st.BLen
	}

	result, err := alignment.NewAlignmentWithPositions(string(aligned1), string(aligned2),
		int(math.Round(sc)), startA, startA+totalA, startB, startB+totalB, alignType)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	alg, _ := m.Algorithm()
	warnings := make([]string, len(aligner.Warnings))
	for i, wm := range aligner.Warnings {
		warnings[i] = wm.String()
	}

	rowsA, rowsB := enumerate.RunEndpoints(path, startA, startB, '+', len(req.Sequence2))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CustomAlignResponse{
		AlignedSeq1: result.AlignedSeq1,
		AlignedSeq2: result.AlignedSeq2,
		Score:       sc,
		Identity:    result.Identity,
		CIGAR:       result.ToCIGAR(),
		Algorithm:   alg.String(),
		RowsA:       rowsA,
		RowsB:       rowsB,
		Warnings:    warnings,
	})
}
