package align

import "github.com/bioflow-go/bioflow-core/internal/score"

func validateInputs(a, b string, strand byte) error {
	if len(a) == 0 || len(b) == 0 {
		return &score.ValidationError{Reason: "sequences must not be empty"}
	}
	if strand != '+' && strand != '-' {
		return &score.ValidationError{Reason: "strand must be '+' or '-'"}
	}
	return nil
}
