package strategy

import "github.com/airenas/workopt/internal/pkg/strategy/api"

// workload tracks accumulated hours per employee within one run.
// Iteration order is the order of employees in the input.
type workload struct {
	hours map[int]float64
	ids   []int
}

func newWorkload(es []*api.Employee) *workload {
	res := &workload{hours: make(map[int]float64, len(es)), ids: make([]int, 0, len(es))}
	for _, e := range es {
		if _, f := res.hours[e.ID]; !f {
			res.hours[e.ID] = 0
			res.ids = append(res.ids, e.ID)
		}
	}
	return res
}

func (w *workload) get(e *api.Employee) float64 {
	return w.hours[e.ID]
}

// assign creates assignment and adds task hours to the employee
func (w *workload) assign(t *api.Task, e *api.Employee) *api.Assignment {
	res := api.NewAssignment(t, e, w.hours[e.ID])
	w.hours[e.ID] = res.EndTime
	return res
}

func (w *workload) makespan() float64 {
	res := 0.0
	for i, id := range w.ids {
		if i == 0 || w.hours[id] > res {
			res = w.hours[id]
		}
	}
	return res
}

func (w *workload) summary() []api.EmployeeSummary {
	res := make([]api.EmployeeSummary, 0)
	for _, id := range w.ids {
		if w.hours[id] > 0 {
			res = append(res, api.EmployeeSummary{EmployeeID: id, TotalAssignedHours: w.hours[id]})
		}
	}
	return res
}

// makeResult aggregates assignments into the final result
func makeResult(as []*api.Assignment, w *workload) *api.Result {
	tc := 0
	for _, a := range as {
		tc = api.AddCost(tc, a.Cost)
	}
	return api.NewResult(as, tc, w.makespan(), w.summary())
}
