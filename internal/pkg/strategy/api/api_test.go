package api

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanExecute(t *testing.T) {
	assert.True(t, CanExecute(&Employee{SkillLevel: 3}, &Task{SkillLevel: 3}))
	assert.True(t, CanExecute(&Employee{SkillLevel: 4}, &Task{SkillLevel: 3}))
	assert.False(t, CanExecute(&Employee{SkillLevel: 2}, &Task{SkillLevel: 3}))
}

func TestNewAssignment(t *testing.T) {
	a := NewAssignment(&Task{ID: 1, Estimation: 2.5}, &Employee{ID: 2, HourlyRate: 100}, 3)
	assert.Equal(t, 3.0, a.StartTime)
	assert.Equal(t, 5.5, a.EndTime)
	assert.Equal(t, 250, a.Cost)
}

func TestNewAssignment_CostSaturates(t *testing.T) {
	a := NewAssignment(&Task{ID: 1, Estimation: 1e300}, &Employee{ID: 2, HourlyRate: 1000}, 0)
	assert.Equal(t, math.MaxInt, a.Cost)
}

func TestRoundCost(t *testing.T) {
	assert.Equal(t, 53, roundCost(52.5))
	assert.Equal(t, math.MaxInt, roundCost(math.Inf(1)))
	assert.Equal(t, math.MinInt, roundCost(-1e300))
}

func TestAddCost(t *testing.T) {
	assert.Equal(t, 5, AddCost(2, 3))
	assert.Equal(t, math.MaxInt, AddCost(math.MaxInt, 1))
	assert.Equal(t, math.MaxInt, AddCost(math.MaxInt-1, math.MaxInt))
	assert.Equal(t, math.MinInt, AddCost(math.MinInt, -1))
	assert.Equal(t, -1, AddCost(2, -3))
}

func TestResult_InfeasibleJSON(t *testing.T) {
	b, err := json.Marshal(NewInfeasibleResult("no eligible employees"))
	assert.Nil(t, err)
	assert.JSONEq(t, `{"feasible":false,"reason":"no eligible employees"}`, string(b))
}

func TestResult_FeasibleJSON(t *testing.T) {
	r := NewResult([]*Assignment{NewAssignment(&Task{ID: 1, Estimation: 2}, &Employee{ID: 2, HourlyRate: 100}, 0)},
		200, 2, []EmployeeSummary{{EmployeeID: 2, TotalAssignedHours: 2}})
	b, err := json.Marshal(r)
	assert.Nil(t, err)
	assert.JSONEq(t, `{"feasible":true,
		"assignments":[{"taskId":1,"employeeId":2,"startTime":0,"endTime":2,"cost":200}],
		"totalCost":200,"makespan":2,
		"employeeSummary":[{"employeeId":2,"totalAssignedHours":2}]}`, string(b))
}

func TestResult_EmptyJSON(t *testing.T) {
	b, err := json.Marshal(NewResult(nil, 0, 0, nil))
	assert.Nil(t, err)
	assert.JSONEq(t, `{"feasible":true,"assignments":[],"totalCost":0,"makespan":0,"employeeSummary":[]}`, string(b))
}

func TestResult_ReadsJSON(t *testing.T) {
	var r Result
	err := json.Unmarshal([]byte(`{"feasible":false,"reason":"olia"}`), &r)
	assert.Nil(t, err)
	assert.Equal(t, Result{Reason: "olia"}, r)

	err = json.Unmarshal([]byte(`{"feasible":true,"assignments":[{"taskId":1,"employeeId":2,"cost":3}],
		"totalCost":3,"makespan":1.5,"employeeSummary":[]}`), &r)
	assert.Nil(t, err)
	assert.True(t, r.Feasible)
	assert.Equal(t, 3, r.TotalCost)
	assert.Equal(t, 1.5, r.Makespan)
	assert.Equal(t, []AssignmentData{{TaskID: 1, EmployeeID: 2, Cost: 3}}, r.Assignments)
}
