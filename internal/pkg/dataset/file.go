package dataset

import (
	"sync"

	"github.com/airenas/workopt/internal/pkg/cmdapp"
	"github.com/airenas/workopt/internal/pkg/strategy/api"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// File loads employees and tasks from yaml/json file.
// The file is watched and reloaded on change.
type File struct {
	Path string
	v    *viper.Viper

	lock      sync.RWMutex
	employees []*api.Employee
	tasks     []*api.Task
}

// NewFile creates File instance
func NewFile(path string) (*File, error) {
	cmdapp.Log.Infof("Init dataset from: %s", path)
	if path == "" {
		return nil, errors.New("No dataset file provided")
	}
	f := File{Path: path}
	f.v = viper.New()
	f.v.SetConfigFile(path)
	err := f.v.ReadInConfig()
	if err != nil {
		return nil, errors.Wrap(err, "Can't read dataset file: "+path)
	}
	err = f.reload()
	if err != nil {
		return nil, err
	}
	f.v.WatchConfig()
	f.v.OnConfigChange(func(e fsnotify.Event) {
		cmdapp.Log.Infof("Dataset changed: %s", e.Name)
		cmdapp.LogIf(errors.Wrap(f.reload(), "Can't reload dataset"))
	})
	return &f, nil
}

func (f *File) reload() error {
	// a truncated file is read without error while it is being rewritten
	if !f.v.IsSet("employees") && !f.v.IsSet("tasks") {
		return errors.New("No employees or tasks in dataset file: " + f.Path)
	}
	var data struct {
		Employees []*api.Employee
		Tasks     []*api.Task
	}
	err := f.v.Unmarshal(&data)
	if err != nil {
		return errors.Wrap(err, "Can't decode dataset file: "+f.Path)
	}
	err = Validate(data.Employees, data.Tasks)
	if err != nil {
		return errors.Wrap(err, "Wrong dataset file: "+f.Path)
	}
	f.lock.Lock()
	defer f.lock.Unlock()
	f.employees, f.tasks = data.Employees, data.Tasks
	cmdapp.Log.Infof("Loaded dataset: %d employees, %d tasks", len(f.employees), len(f.tasks))
	return nil
}

// Load returns copies of the current employees and tasks
func (f *File) Load() ([]*api.Employee, []*api.Task, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	es := make([]*api.Employee, len(f.employees))
	for i, e := range f.employees {
		c := *e
		es[i] = &c
	}
	ts := make([]*api.Task, len(f.tasks))
	for i, t := range f.tasks {
		c := *t
		ts[i] = &c
	}
	return es, ts, nil
}
