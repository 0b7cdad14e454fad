package mocks

import (
	"github.com/airenas/workopt/internal/pkg/strategy/api"
	"github.com/stretchr/testify/mock"
)

// InputProvider is a mock
type InputProvider struct {
	mock.Mock
}

// Load is a mocked Load function
func (m *InputProvider) Load() ([]*api.Employee, []*api.Task, error) {
	args := m.Mock.Called()
	var es []*api.Employee
	var ts []*api.Task
	if v := args.Get(0); v != nil {
		es = v.([]*api.Employee)
	}
	if v := args.Get(1); v != nil {
		ts = v.([]*api.Task)
	}
	return es, ts, args.Error(2)
}
