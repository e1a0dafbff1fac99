package dto

import (
	"time"

	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

// SolveResult contains the complete output of solving one named problem
type SolveResult struct {
	Name      string             `json:"name"`
	RunID     string             `json:"run_id"`
	Problem   entities.Problem   `json:"input"`
	Solution  *entities.Solution `json:"solution"`
	SolveTime time.Duration      `json:"solve_time_ns"`
}
