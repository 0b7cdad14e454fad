package optimizecli

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlInput = `employees:
  - employeeId: 1
    skillLevel: 1
    hourlyRate: 100
  - employeeId: 2
    skillLevel: 2
    hourlyRate: 200
tasks:
  - taskId: 1
    skillLevel: 1
    estimation: 2
  - taskId: 2
    skillLevel: 2
    estimation: 3
`

const jsonInput = `{"employees":[{"employeeId":1,"skillLevel":1,"hourlyRate":100},
	{"employeeId":2,"skillLevel":2,"hourlyRate":200}],
	"tasks":[{"taskId":1,"skillLevel":1,"estimation":2},{"taskId":2,"skillLevel":2,"estimation":3}]}`

func writeTemp(t *testing.T, name, data string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "optimizecli")
	require.Nil(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	fn := filepath.Join(dir, name)
	require.Nil(t, ioutil.WriteFile(fn, []byte(data), 0644))
	return fn
}

func TestReadInput_YAML(t *testing.T) {
	in, err := readInput(writeTemp(t, "in.yaml", yamlInput))
	require.Nil(t, err)
	require.Equal(t, 2, len(in.Employees))
	require.Equal(t, 2, len(in.Tasks))
	assert.Equal(t, 200, in.Employees[1].HourlyRate)
	assert.Equal(t, 3.0, in.Tasks[1].Estimation)
}

func TestReadInput_YML(t *testing.T) {
	_, err := readInput(writeTemp(t, "in.YML", yamlInput))
	assert.Nil(t, err)
}

func TestReadInput_JSON(t *testing.T) {
	in, err := readInput(writeTemp(t, "in.json", jsonInput))
	require.Nil(t, err)
	assert.Equal(t, 2, in.Employees[1].SkillLevel)
	assert.Equal(t, 2, in.Tasks[1].ID)
}

func TestReadInput_Fails(t *testing.T) {
	_, err := readInput("")
	assert.NotNil(t, err)
	_, err = readInput("/not/existing.yaml")
	assert.NotNil(t, err)
	_, err = readInput(writeTemp(t, "in.txt", jsonInput))
	assert.NotNil(t, err)
	_, err = readInput(writeTemp(t, "in.json", "{olia"))
	assert.NotNil(t, err)
	_, err = readInput(writeTemp(t, "in.yaml", "employees:\n  - olia: 1\n"))
	assert.NotNil(t, err)
}

func TestReadInput_Invalid(t *testing.T) {
	_, err := readInput(writeTemp(t, "in.json",
		`{"employees":[{"employeeId":1,"skillLevel":1,"hourlyRate":0}],"tasks":[]}`))
	assert.NotNil(t, err)
}
