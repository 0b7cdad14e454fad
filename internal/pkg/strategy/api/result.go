package api

import "encoding/json"

// AssignmentData is a flat view of Assignment
type AssignmentData struct {
	TaskID     int     `json:"taskId" bson:"taskId"`
	EmployeeID int     `json:"employeeId" bson:"employeeId"`
	StartTime  float64 `json:"startTime" bson:"startTime"`
	EndTime    float64 `json:"endTime" bson:"endTime"`
	Cost       int     `json:"cost" bson:"cost"`
}

// EmployeeSummary keeps assigned hours for an employee
type EmployeeSummary struct {
	EmployeeID         int     `json:"employeeId" bson:"employeeId"`
	TotalAssignedHours float64 `json:"totalAssignedHours" bson:"totalAssignedHours"`
}

// Result is the optimization output.
// Infeasible result has only Reason set.
type Result struct {
	Feasible        bool              `bson:"feasible"`
	Reason          string            `bson:"reason,omitempty"`
	Assignments     []AssignmentData  `bson:"assignments,omitempty"`
	TotalCost       int               `bson:"totalCost"`
	Makespan        float64           `bson:"makespan"`
	EmployeeSummary []EmployeeSummary `bson:"employeeSummary,omitempty"`
}

// NewInfeasibleResult creates result for the failed feasibility check
func NewInfeasibleResult(reason string) *Result {
	return &Result{Feasible: false, Reason: reason}
}

// NewResult creates feasible result
func NewResult(as []*Assignment, totalCost int, makespan float64, summary []EmployeeSummary) *Result {
	res := &Result{Feasible: true, TotalCost: totalCost, Makespan: makespan}
	res.Assignments = make([]AssignmentData, len(as))
	for i, a := range as {
		res.Assignments[i] = AssignmentData{TaskID: a.Task.ID, EmployeeID: a.Employee.ID,
			StartTime: a.StartTime, EndTime: a.EndTime, Cost: a.Cost}
	}
	res.EmployeeSummary = summary
	if res.EmployeeSummary == nil {
		res.EmployeeSummary = []EmployeeSummary{}
	}
	return res
}

type infeasibleJSON struct {
	Feasible bool   `json:"feasible"`
	Reason   string `json:"reason"`
}

type feasibleJSON struct {
	Feasible        bool              `json:"feasible"`
	Assignments     []AssignmentData  `json:"assignments"`
	TotalCost       int               `json:"totalCost"`
	Makespan        float64           `json:"makespan"`
	EmployeeSummary []EmployeeSummary `json:"employeeSummary"`
}

// MarshalJSON writes one of two result shapes
func (r Result) MarshalJSON() ([]byte, error) {
	if !r.Feasible {
		return json.Marshal(infeasibleJSON{Reason: r.Reason})
	}
	res := feasibleJSON{Feasible: true, Assignments: r.Assignments, TotalCost: r.TotalCost,
		Makespan: r.Makespan, EmployeeSummary: r.EmployeeSummary}
	if res.Assignments == nil {
		res.Assignments = []AssignmentData{}
	}
	if res.EmployeeSummary == nil {
		res.EmployeeSummary = []EmployeeSummary{}
	}
	return json.Marshal(res)
}

// UnmarshalJSON reads both result shapes
func (r *Result) UnmarshalJSON(data []byte) error {
	var res struct {
		feasibleJSON
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(data, &res); err != nil {
		return err
	}
	*r = Result{Feasible: res.Feasible, Reason: res.Reason}
	if res.Feasible {
		r.Assignments = res.Assignments
		r.TotalCost = res.TotalCost
		r.Makespan = res.Makespan
		r.EmployeeSummary = res.EmployeeSummary
	}
	return nil
}
