package application

import (
	"time"

	"github.com/bnema/aoc-2018/internal/domain"
)

type VerifyStatus string

const (
	VerifyStatusUnchecked    VerifyStatus = ""
	VerifyStatusMatch        VerifyStatus = "match"
	VerifyStatusMismatch     VerifyStatus = "mismatch"
	VerifyStatusMissingInput VerifyStatus = "missing input"
)

// Report is one solved day as shown by the CLI. Expected is only set by
// Verify.
type Report struct {
	Solution  domain.Solution  `json:"solution"`
	InputPath string           `json:"input,omitempty"`
	Elapsed   time.Duration    `json:"elapsed_ns,omitempty"`
	Expected  *domain.Solution `json:"expected,omitempty"`
	Status    VerifyStatus     `json:"status,omitempty"`
}

func (r Report) Mismatched() bool {
	return r.Status == VerifyStatusMismatch
}

func Solutions(reports []Report) []domain.Solution {
	solutions := make([]domain.Solution, 0, len(reports))
	for _, report := range reports {
		solutions = append(solutions, report.Solution)
	}

	return solutions
}
