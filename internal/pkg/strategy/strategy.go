package strategy

import (
	"strings"

	"github.com/airenas/workopt/internal/pkg/strategy/api"
	"github.com/pkg/errors"
)

// Type is a strategy identifier
type Type string

const (
	//CostType minimizes total cost
	CostType Type = "cost"
	//MakespanType minimizes the completion time
	MakespanType Type = "makespan"
)

// ErrUnknownStrategy indicates not supported strategy name
var ErrUnknownStrategy = errors.New("Unknown strategy")

// Names returns supported strategy identifiers
func Names() []string {
	return []string{string(CostType), string(MakespanType)}
}

// Normalize returns strategy identifier in canonical form
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// New creates optimizer by strategy name
func New(name string) (api.Optimizer, error) {
	switch Type(Normalize(name)) {
	case CostType:
		return NewCost(), nil
	case MakespanType:
		return NewMakespan(), nil
	}
	return nil, errors.Wrapf(ErrUnknownStrategy, "'%s'", name)
}
