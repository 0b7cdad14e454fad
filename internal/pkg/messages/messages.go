package messages

import (
	"github.com/airenas/workopt/internal/pkg/persistence"
)

// RunEvent message informing that the optimization run has finished
type RunEvent struct {
	ID        string  `json:"id"`
	Strategy  string  `json:"strategy"`
	Feasible  bool    `json:"feasible"`
	TotalCost int     `json:"totalCost"`
	Makespan  float64 `json:"makespan"`
}

// NewRunEvent creates the event from the run
func NewRunEvent(run *persistence.Run) *RunEvent {
	res := &RunEvent{ID: run.ID, Strategy: run.Strategy}
	if run.Result != nil {
		res.Feasible = run.Result.Feasible
		res.TotalCost = run.Result.TotalCost
		res.Makespan = run.Result.Makespan
	}
	return res
}
