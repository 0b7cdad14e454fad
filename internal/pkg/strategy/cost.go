package strategy

import (
	"github.com/airenas/workopt/internal/pkg/strategy/api"
)

// Cost based strategy.
// Tasks are processed in the input order. A task goes to the cheapest idle
// eligible employee, or to the cheapest eligible one when all are busy.
type Cost struct{}

// NewCost init new Cost optimizer
func NewCost() *Cost {
	return &Cost{}
}

// Name returns display name
func (c *Cost) Name() string {
	return "Cost Optimizer"
}

// Optimize is the main assignment method
func (c *Cost) Optimize(es []*api.Employee, ts []*api.Task) *api.Result {
	el := buildEligibility(es, ts, byRateAsc)
	if r := checkFeasibility(el, ts); r != "" {
		return api.NewInfeasibleResult(r)
	}
	wl := newWorkload(es)
	as := make([]*api.Assignment, 0, len(ts))
	for _, t := range ts {
		e := selectCheapest(el[t.SkillLevel], wl)
		as = append(as, wl.assign(t, e))
	}
	return makeResult(as, wl)
}

func selectCheapest(cs []*api.Employee, wl *workload) *api.Employee {
	for _, e := range cs {
		if wl.get(e) == 0 {
			return e
		}
	}
	return cs[0]
}
