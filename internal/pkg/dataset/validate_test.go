package dataset

import (
	"testing"

	"github.com/airenas/workopt/internal/pkg/strategy/api"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(nil, nil))
	assert.Nil(t, Validate([]*api.Employee{{ID: 1, SkillLevel: 1, HourlyRate: 1}, {ID: 2, SkillLevel: 10, HourlyRate: 100}},
		[]*api.Task{{ID: 1, SkillLevel: 10, Estimation: 0.5}}))
}

func TestValidate_Fails(t *testing.T) {
	assert.NotNil(t, Validate([]*api.Employee{{ID: 1, SkillLevel: 0, HourlyRate: 1}}, nil))
	assert.NotNil(t, Validate([]*api.Employee{{ID: 1, SkillLevel: 11, HourlyRate: 1}}, nil))
	assert.NotNil(t, Validate([]*api.Employee{{ID: 1, SkillLevel: 1, HourlyRate: 0}}, nil))
	assert.NotNil(t, Validate([]*api.Employee{{ID: 1, SkillLevel: 1, HourlyRate: 1}, {ID: 1, SkillLevel: 2, HourlyRate: 1}}, nil))
	assert.NotNil(t, Validate([]*api.Employee{nil}, nil))
	assert.NotNil(t, Validate(nil, []*api.Task{{ID: 1, SkillLevel: 1, Estimation: 0}}))
	assert.NotNil(t, Validate(nil, []*api.Task{{ID: 1, SkillLevel: -1, Estimation: 1}}))
	assert.NotNil(t, Validate(nil, []*api.Task{{ID: 1, SkillLevel: 1, Estimation: 1}, {ID: 1, SkillLevel: 1, Estimation: 1}}))
	assert.NotNil(t, Validate(nil, []*api.Task{nil}))
}

func TestValidate_MessageNamesItem(t *testing.T) {
	err := Validate(nil, []*api.Task{{ID: 7, SkillLevel: 12, Estimation: 1}})
	assert.Contains(t, err.Error(), "Task 7")
}
