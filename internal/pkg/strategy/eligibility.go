package strategy

import (
	"sort"

	"github.com/airenas/workopt/internal/pkg/strategy/api"
)

const noEligibleReason = "One or more tasks have no eligible employees"

// lessFunc orders two employees inside an eligibility list
type lessFunc func(a, b *api.Employee) bool

// eligibility keeps ordered candidate lists per required skill level
type eligibility map[int][]*api.Employee

// byRateAsc - cheapest first
func byRateAsc(a, b *api.Employee) bool {
	return a.HourlyRate < b.HourlyRate
}

// bySkillDesc - most skilled first
func bySkillDesc(a, b *api.Employee) bool {
	return a.SkillLevel > b.SkillLevel
}

func buildEligibility(es []*api.Employee, ts []*api.Task, less lessFunc) eligibility {
	res := eligibility{}
	for _, t := range ts {
		if _, f := res[t.SkillLevel]; f {
			continue
		}
		l := make([]*api.Employee, 0, len(es))
		for _, e := range es {
			if api.CanExecute(e, t) {
				l = append(l, e)
			}
		}
		sort.SliceStable(l, func(i, j int) bool { return less(l[i], l[j]) })
		res[t.SkillLevel] = l
	}
	return res
}

// checkFeasibility returns "" or the reason why tasks can't be assigned
func checkFeasibility(el eligibility, ts []*api.Task) string {
	for _, t := range ts {
		if len(el[t.SkillLevel]) == 0 {
			return noEligibleReason
		}
	}
	return ""
}
