package api

import "math"

// Employee is a worker that can execute tasks of their skill level or lower
type Employee struct {
	ID         int `json:"employeeId" bson:"employeeId" yaml:"employeeId" mapstructure:"employeeId"`
	SkillLevel int `json:"skillLevel" bson:"skillLevel" yaml:"skillLevel" mapstructure:"skillLevel"`
	HourlyRate int `json:"hourlyRate" bson:"hourlyRate" yaml:"hourlyRate" mapstructure:"hourlyRate"`
}

// Task is a work item with required skill level and estimation in hours
type Task struct {
	ID         int     `json:"taskId" bson:"taskId" yaml:"taskId" mapstructure:"taskId"`
	SkillLevel int     `json:"skillLevel" bson:"skillLevel" yaml:"skillLevel" mapstructure:"skillLevel"`
	Estimation float64 `json:"estimation" bson:"estimation" yaml:"estimation" mapstructure:"estimation"`
}

// CanExecute returns true if employee's skill level is enough for the task
func CanExecute(e *Employee, t *Task) bool {
	return e.SkillLevel >= t.SkillLevel
}

// Assignment binds task to employee
type Assignment struct {
	Task      *Task
	Employee  *Employee
	StartTime float64
	EndTime   float64
	Cost      int
}

// NewAssignment creates assignment starting at employee's current workload
func NewAssignment(t *Task, e *Employee, startTime float64) *Assignment {
	return &Assignment{Task: t, Employee: e,
		StartTime: startTime,
		EndTime:   startTime + t.Estimation,
		Cost:      roundCost(t.Estimation * float64(e.HourlyRate))}
}

// roundCost rounds to the nearest integer, saturating at the int range
func roundCost(v float64) int {
	r := math.Round(v)
	if r >= float64(math.MaxInt) {
		return math.MaxInt
	}
	if r <= float64(math.MinInt) {
		return math.MinInt
	}
	return int(r)
}

// AddCost sums costs, saturating at the int range
func AddCost(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}

// Optimizer assigns tasks to employees
type Optimizer interface {
	Optimize(employees []*Employee, tasks []*Task) *Result
	Name() string
}
