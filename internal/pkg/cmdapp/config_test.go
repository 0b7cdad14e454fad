package cmdapp

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "test",
		Long:  `test`,
		Run:   run}
}

func run(cmd *cobra.Command, args []string) {
	Log.Info("Starting test")
}

func TestReadEnvironmentVariable(t *testing.T) {
	os.Setenv("MONGO_URL", "olia")
	defer os.Unsetenv("MONGO_URL")
	InitApplication(newRootCmd())

	assert.Equal(t, "olia", Config.GetString("mongo.url"))
}

func TestReadConfig(t *testing.T) {
	initAppFromTempFile(t, "dataset:\n     file: olia.yaml\n")

	assert.Equal(t, "olia.yaml", Config.GetString("dataset.file"))
}

func TestEnvBeatsConfig(t *testing.T) {
	os.Setenv("DATASET_FILE", "xxxx")
	defer os.Unsetenv("DATASET_FILE")
	initAppFromTempFile(t, "dataset:\n     file: olia.yaml\n")

	assert.Equal(t, "xxxx", Config.GetString("dataset.file"))
}

func TestDefaultLogger(t *testing.T) {
	initDefaultLevel()
	initAppFromTempFile(t, "")

	assert.Equal(t, "info", Log.GetLevel().String())
}

func TestLoggerInitFromConfig(t *testing.T) {
	initDefaultLevel()
	initAppFromTempFile(t, "logger:\n    level: trace\n")

	assert.Equal(t, "trace", Log.GetLevel().String())
}

func TestLoggerLevelInitFromEnv(t *testing.T) {
	initDefaultLevel()

	os.Setenv("LOGGER_LEVEL", "debug")
	defer os.Unsetenv("LOGGER_LEVEL")
	initAppFromTempFile(t, "logger:\n    level: info\n")

	assert.Equal(t, "debug", Log.GetLevel().String())
}

func TestCheckOrPanic(t *testing.T) {
	assert.NotPanics(t, func() { CheckOrPanic(nil, "olia") })
	assert.Panics(t, func() { CheckOrPanic(os.ErrNotExist, "olia") })
	assert.Panics(t, func() { CheckOrPanic(os.ErrNotExist, "") })
}

func initAppFromTempFile(t *testing.T, data string) {
	f, err := ioutil.TempFile("", "test.*.yml")
	assert.Nil(t, err)
	f.WriteString(data)
	f.Sync()

	defer os.Remove(f.Name())

	rootCmd := newRootCmd()
	InitApplication(rootCmd)
	configFile = f.Name()
	rootCmd.SetArgs([]string{})
	rootCmd.Execute()
}

func initDefaultLevel() {
	Log.SetLevel(logrus.ErrorLevel)
}
