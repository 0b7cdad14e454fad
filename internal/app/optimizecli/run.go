package optimizecli

import (
	"encoding/json"
	"io"
	"time"

	"github.com/airenas/workopt/internal/pkg/cmdapp"
	"github.com/airenas/workopt/internal/pkg/persistence"
	"github.com/airenas/workopt/internal/pkg/strategy"
	"github.com/airenas/workopt/internal/pkg/strategy/api"
	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"
)

const (
	allStrategies = "all"
	outputTable   = "table"
	outputJSON    = "json"
)

type runResult struct {
	Strategy   string      `json:"strategy"`
	Name       string      `json:"name"`
	DurationMs float64     `json:"durationMs"`
	Result     *api.Result `json:"result"`
}

func runOptimize(w io.Writer, p *params) error {
	ids, err := selectStrategies(p.strategy)
	if err != nil {
		return err
	}
	if p.output != outputTable && p.output != outputJSON {
		return errors.Errorf("Unknown output '%s'", p.output)
	}
	in, err := readInput(p.input)
	if err != nil {
		return err
	}
	res := make([]*runResult, 0, len(ids))
	for _, id := range ids {
		r, err := optimize(id, in)
		if err != nil {
			return err
		}
		res = append(res, r)
	}
	if p.output == outputJSON {
		return writeJSON(w, res)
	}
	cl := color.New()
	if p.noColor {
		cl.Disable()
	}
	renderTables(w, cl, res)
	return nil
}

func selectStrategies(name string) ([]string, error) {
	n := strategy.Normalize(name)
	if n == allStrategies {
		return strategy.Names(), nil
	}
	if _, err := strategy.New(n); err != nil {
		return nil, err
	}
	return []string{n}, nil
}

func optimize(id string, in *persistence.Input) (*runResult, error) {
	opt, err := strategy.New(id)
	if err != nil {
		return nil, err
	}
	st := time.Now()
	r := opt.Optimize(in.Employees, in.Tasks)
	res := &runResult{Strategy: id, Name: opt.Name(), Result: r,
		DurationMs: float64(time.Since(st).Microseconds()) / 1000}
	cmdapp.Log.Debugf("%s done in %.3fms", opt.Name(), res.DurationMs)
	return res, nil
}

func writeJSON(w io.Writer, res []*runResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	var err error
	if len(res) == 1 {
		err = enc.Encode(res[0])
	} else {
		err = enc.Encode(res)
	}
	return errors.Wrap(err, "Can't write json")
}
