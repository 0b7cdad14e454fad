package persistence

import (
	"time"

	"github.com/airenas/workopt/internal/pkg/strategy/api"
	"github.com/pkg/errors"
)

// ErrNotFound indicates no record in storage
var ErrNotFound = errors.New("Not found")

type (
	//Run keeps one optimization run data
	Run struct {
		ID            string      `json:"id" bson:"ID"`
		Strategy      string      `json:"strategy" bson:"strategy"`
		Name          string      `json:"name" bson:"name"`
		Started       time.Time   `json:"started" bson:"started"`
		DurationMs    float64     `json:"durationMs" bson:"durationMs"`
		EmployeeCount int         `json:"employeeCount" bson:"employeeCount"`
		TaskCount     int         `json:"taskCount" bson:"taskCount"`
		Result        *api.Result `json:"result" bson:"result"`
	}

	//Input is a set of data for optimization
	Input struct {
		Employees []*api.Employee `json:"employees" yaml:"employees"`
		Tasks     []*api.Task     `json:"tasks" yaml:"tasks"`
	}
)
