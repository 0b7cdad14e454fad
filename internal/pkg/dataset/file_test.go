package dataset

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYaml = `
employees:
  - employeeId: 1
    skillLevel: 2
    hourlyRate: 100
  - employeeId: 2
    skillLevel: 5
    hourlyRate: 250
tasks:
  - taskId: 10
    skillLevel: 3
    estimation: 2.5
`

func TestNewFile(t *testing.T) {
	fn := writeTemp(t, "test.*.yaml", testYaml)
	defer os.Remove(fn)

	f, err := NewFile(fn)
	require.Nil(t, err)
	es, ts, err := f.Load()
	assert.Nil(t, err)
	assert.Equal(t, 2, len(es))
	assert.Equal(t, 250, es[1].HourlyRate)
	assert.Equal(t, 5, es[1].SkillLevel)
	assert.Equal(t, 1, len(ts))
	assert.Equal(t, 10, ts[0].ID)
	assert.Equal(t, 2.5, ts[0].Estimation)
}

func TestNewFile_JSON(t *testing.T) {
	fn := writeTemp(t, "test.*.json", `{"employees":[{"employeeId":3,"skillLevel":1,"hourlyRate":10}],"tasks":[]}`)
	defer os.Remove(fn)

	f, err := NewFile(fn)
	require.Nil(t, err)
	es, ts, _ := f.Load()
	assert.Equal(t, 3, es[0].ID)
	assert.Equal(t, 0, len(ts))
}

func TestLoad_ReturnsCopies(t *testing.T) {
	fn := writeTemp(t, "test.*.yaml", testYaml)
	defer os.Remove(fn)

	f, err := NewFile(fn)
	require.Nil(t, err)
	es, _, _ := f.Load()
	es[0].HourlyRate = 1
	es, _, _ = f.Load()
	assert.Equal(t, 100, es[0].HourlyRate)
}

func TestNewFile_Fails(t *testing.T) {
	_, err := NewFile("")
	assert.NotNil(t, err)
	_, err = NewFile("/not/existing/file.yaml")
	assert.NotNil(t, err)
}

func TestNewFile_FailsValidation(t *testing.T) {
	fn := writeTemp(t, "test.*.yaml", "employees:\n  - employeeId: 1\n    skillLevel: 20\n    hourlyRate: 1\n")
	defer os.Remove(fn)

	_, err := NewFile(fn)
	assert.NotNil(t, err)
}

func TestNewFile_FailsEmpty(t *testing.T) {
	fn := writeTemp(t, "test.*.yaml", "")
	defer os.Remove(fn)

	_, err := NewFile(fn)
	assert.NotNil(t, err)
}

func TestReload_KeepsDataOnTruncatedFile(t *testing.T) {
	fn := writeTemp(t, "test.*.yaml", testYaml)
	defer os.Remove(fn)

	f, err := NewFile(fn)
	require.Nil(t, err)
	require.Nil(t, ioutil.WriteFile(fn, []byte(""), 0644))
	require.Nil(t, f.v.ReadInConfig())

	assert.NotNil(t, f.reload())
	es, ts, err := f.Load()
	assert.Nil(t, err)
	assert.Equal(t, 2, len(es))
	assert.Equal(t, 1, len(ts))
}

func TestReload_AcceptsEmptyLists(t *testing.T) {
	fn := writeTemp(t, "test.*.yaml", "employees: []\ntasks: []\n")
	defer os.Remove(fn)

	f, err := NewFile(fn)
	require.Nil(t, err)
	es, ts, _ := f.Load()
	assert.Equal(t, 0, len(es))
	assert.Equal(t, 0, len(ts))
}

func writeTemp(t *testing.T, pattern, data string) string {
	f, err := ioutil.TempFile("", pattern)
	require.Nil(t, err)
	defer f.Close()
	_, err = f.WriteString(data)
	require.Nil(t, err)
	return f.Name()
}
