package mocks

import (
	"github.com/airenas/workopt/internal/pkg/persistence"
	"github.com/stretchr/testify/mock"
)

// Publisher is a mock
type Publisher struct {
	mock.Mock
}

// Publish is a mocked Publish function
func (m *Publisher) Publish(run *persistence.Run) error {
	args := m.Mock.Called(run)
	return args.Error(0)
}

// Name is a mocked Name function
func (m *Publisher) Name() string {
	args := m.Mock.Called()
	return args.String(0)
}
