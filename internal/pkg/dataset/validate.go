package dataset

import (
	"github.com/airenas/workopt/internal/pkg/strategy/api"
	"github.com/pkg/errors"
)

const (
	//MinSkillLevel is the lowest skill level
	MinSkillLevel = 1
	//MaxSkillLevel is the highest skill level
	MaxSkillLevel = 10
)

// Validate checks input data before passing it to an optimizer
func Validate(es []*api.Employee, ts []*api.Task) error {
	ids := make(map[int]bool, len(es))
	for _, e := range es {
		if e == nil {
			return errors.New("Empty employee")
		}
		if ids[e.ID] {
			return errors.Errorf("Duplicate employee %d", e.ID)
		}
		ids[e.ID] = true
		if err := checkSkill(e.SkillLevel); err != nil {
			return errors.Wrapf(err, "Employee %d", e.ID)
		}
		if e.HourlyRate <= 0 {
			return errors.Errorf("Employee %d: wrong hourly rate %d", e.ID, e.HourlyRate)
		}
	}
	ids = make(map[int]bool, len(ts))
	for _, t := range ts {
		if t == nil {
			return errors.New("Empty task")
		}
		if ids[t.ID] {
			return errors.Errorf("Duplicate task %d", t.ID)
		}
		ids[t.ID] = true
		if err := checkSkill(t.SkillLevel); err != nil {
			return errors.Wrapf(err, "Task %d", t.ID)
		}
		if t.Estimation <= 0 {
			return errors.Errorf("Task %d: wrong estimation %v", t.ID, t.Estimation)
		}
	}
	return nil
}

func checkSkill(l int) error {
	if l < MinSkillLevel || l > MaxSkillLevel {
		return errors.Errorf("wrong skill level %d, expected [%d, %d]", l, MinSkillLevel, MaxSkillLevel)
	}
	return nil
}
