package optimizecli

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/airenas/workopt/internal/pkg/dataset"
	"github.com/airenas/workopt/internal/pkg/persistence"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// readInput loads and validates employees and tasks from the file.
// Format is selected by the file extension
func readInput(file string) (*persistence.Input, error) {
	if file == "" {
		return nil, errors.New("No input file")
	}
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't read %s", file)
	}
	var res persistence.Input
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".yaml", ".yml":
		err = yaml.UnmarshalStrict(b, &res)
	case ".json":
		err = json.Unmarshal(b, &res)
	default:
		return nil, errors.Errorf("Unsupported input file extension '%s'", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "Can't decode %s", file)
	}
	if err = dataset.Validate(res.Employees, res.Tasks); err != nil {
		return nil, errors.Wrapf(err, "Wrong input %s", file)
	}
	return &res, nil
}
