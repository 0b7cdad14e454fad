package mocks

import (
	"github.com/airenas/workopt/internal/pkg/persistence"
	"github.com/stretchr/testify/mock"
)

// RunSaver is a mock
type RunSaver struct {
	mock.Mock
}

// Save is a mocked Save function
func (m *RunSaver) Save(run *persistence.Run) error {
	args := m.Mock.Called(run)
	return args.Error(0)
}

// RunProvider is a mock
type RunProvider struct {
	mock.Mock
}

// Get is a mocked Get function
func (m *RunProvider) Get(id string) (*persistence.Run, error) {
	args := m.Mock.Called(id)
	return mockRun(args.Get(0)), args.Error(1)
}

func mockRun(v interface{}) *persistence.Run {
	if v == nil {
		return nil
	}
	return v.(*persistence.Run)
}
