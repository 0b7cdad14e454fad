package strategy

import (
	"sort"

	"github.com/airenas/workopt/internal/pkg/strategy/api"
)

// Makespan strategy - Longest Processing Time first.
// Tasks are sorted by estimation desc, skill level desc and each one goes to
// the least loaded eligible employee.
type Makespan struct{}

// NewMakespan init new Makespan optimizer
func NewMakespan() *Makespan {
	return &Makespan{}
}

// Name returns display name
func (m *Makespan) Name() string {
	return "Makespan Optimizer (LPT)"
}

// Optimize is the main assignment method
func (m *Makespan) Optimize(es []*api.Employee, ts []*api.Task) *api.Result {
	el := buildEligibility(es, ts, bySkillDesc)
	if r := checkFeasibility(el, ts); r != "" {
		return api.NewInfeasibleResult(r)
	}
	sts := sortLongestFirst(ts)
	wl := newWorkload(es)
	hasWork := make(map[int]bool, len(es))
	as := make([]*api.Assignment, 0, len(ts))
	for _, t := range sts {
		e := selectLeastLoaded(el[t.SkillLevel], wl, hasWork)
		as = append(as, wl.assign(t, e))
		hasWork[e.ID] = true
	}
	return makeResult(as, wl)
}

// sortLongestFirst returns sorted copy: estimation desc, skill level desc, input order
func sortLongestFirst(ts []*api.Task) []*api.Task {
	res := make([]*api.Task, len(ts))
	copy(res, ts)
	sort.SliceStable(res, func(i, j int) bool { return longerTask(res[i], res[j]) })
	return res
}

func longerTask(a, b *api.Task) bool {
	if a.Estimation != b.Estimation {
		return a.Estimation > b.Estimation
	}
	return a.SkillLevel > b.SkillLevel
}

// selectLeastLoaded picks the candidate by: lower workload, already working,
// higher skill level, position in the list
func selectLeastLoaded(cs []*api.Employee, wl *workload, hasWork map[int]bool) *api.Employee {
	best := cs[0]
	for _, e := range cs[1:] {
		if betterCandidate(e, best, wl, hasWork) {
			best = e
		}
	}
	return best
}

func betterCandidate(e, best *api.Employee, wl *workload, hasWork map[int]bool) bool {
	we, wb := wl.get(e), wl.get(best)
	if we != wb {
		return we < wb
	}
	if hasWork[e.ID] != hasWork[best.ID] {
		return hasWork[e.ID]
	}
	return e.SkillLevel > best.SkillLevel
}
