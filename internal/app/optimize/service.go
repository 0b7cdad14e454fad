package optimize

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/airenas/workopt/internal/pkg/cmdapp"
	"github.com/airenas/workopt/internal/pkg/dataset"
	"github.com/airenas/workopt/internal/pkg/deliver"
	"github.com/airenas/workopt/internal/pkg/persistence"
	"github.com/airenas/workopt/internal/pkg/strategy"
	"github.com/airenas/workopt/internal/pkg/strategy/api"
	"github.com/facebookgo/grace/gracehttp"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/heptiolabs/healthcheck"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type (
	//InputProvider provides stored employees and tasks
	InputProvider interface {
		Load() ([]*api.Employee, []*api.Task, error)
	}

	//RunSaver saves finished runs
	RunSaver interface {
		Save(run *persistence.Run) error
	}

	//RunProvider loads saved runs
	RunProvider interface {
		Get(id string) (*persistence.Run, error)
	}
)

// ServiceData keeps data required for service work
type ServiceData struct {
	InputProvider InputProvider
	RunSaver      RunSaver
	RunProvider   RunProvider
	Deliverer     *deliver.Deliverer

	Port    int
	health  healthcheck.Handler
	metrics serviceMetric
}

func newServiceData() (*ServiceData, error) {
	res := &ServiceData{}
	err := initMetrics(res)
	if err != nil {
		return nil, errors.Wrap(err, "Can't init metrics")
	}
	return res, nil
}

type strategyInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StartWebServer starts the HTTP service and listens for the requests
func StartWebServer(data *ServiceData) error {
	cmdapp.Log.Infof("Starting HTTP service at %d", data.Port)
	r := NewRouter(data)

	portStr := strconv.Itoa(data.Port)
	srv := http.Server{
		Addr:              ":" + portStr,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		Handler:           r,
	}

	w := cmdapp.Log.Writer()
	defer w.Close()
	l := log.New(w, "", 0)
	gracehttp.SetLogger(l)

	return gracehttp.Serve(&srv)
}

// NewRouter creates the router for HTTP service
func NewRouter(data *ServiceData) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	oh := promhttp.InstrumentHandlerDuration(data.metrics.route("optimize"), &optimizeHandler{data: data})
	sh := promhttp.InstrumentHandlerDuration(data.metrics.route("optimizeStored"),
		&optimizeHandler{data: data, stored: true})
	rh := promhttp.InstrumentHandlerDuration(data.metrics.route("run"), &runHandler{data: data})
	router.Methods("POST").Path("/optimize/{strategy}").Handler(oh)
	router.Methods("POST").Path("/optimize/{strategy}/stored").Handler(sh)
	router.Methods("GET").Path("/run/{id}").Handler(rh)
	router.Methods("GET").Path("/strategies").HandlerFunc(strategiesHandler)
	router.Methods("GET").Path("/metrics").Handler(promhttp.Handler())
	if data.health != nil {
		router.Methods("GET").Path("/live").HandlerFunc(data.health.LiveEndpoint)
		router.Methods("GET").Path("/ready").HandlerFunc(data.health.ReadyEndpoint)
	}
	return router
}

type optimizeHandler struct {
	data   *ServiceData
	stored bool
}

func (h *optimizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["strategy"]
	cmdapp.Log.Infof("Optimize '%s' request from %s", name, r.Host)
	opt, err := strategy.New(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		cmdapp.Log.Error(err)
		return
	}
	var in *persistence.Input
	if h.stored {
		in, err = h.loadStored()
		if err != nil {
			http.Error(w, "Can't load stored input", http.StatusInternalServerError)
			cmdapp.Log.Error(err)
			return
		}
	} else {
		in, err = decodeInput(r)
		if err != nil {
			http.Error(w, "Bad input", http.StatusBadRequest)
			cmdapp.Log.Error(err)
			return
		}
	}
	if err = dataset.Validate(in.Employees, in.Tasks); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		cmdapp.Log.Error(err)
		return
	}

	run := optimize(h.data, strategy.Normalize(name), opt, in)
	if h.data.RunSaver != nil {
		if err = h.data.RunSaver.Save(run); err != nil {
			http.Error(w, "Can not save run", http.StatusInternalServerError)
			cmdapp.Log.Error(err)
			return
		}
	}
	h.data.Deliverer.Start(run)
	writeJSON(w, run)
}

func (h *optimizeHandler) loadStored() (*persistence.Input, error) {
	if h.data.InputProvider == nil {
		return nil, errors.New("No input provider configured")
	}
	es, ts, err := h.data.InputProvider.Load()
	if err != nil {
		return nil, err
	}
	return &persistence.Input{Employees: es, Tasks: ts}, nil
}

func decodeInput(r *http.Request) (*persistence.Input, error) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	var res persistence.Input
	if err := dec.Decode(&res); err != nil {
		return nil, errors.Wrap(err, "Can't decode input")
	}
	return &res, nil
}

// optimize runs the optimizer and observes the run metrics
func optimize(data *ServiceData, id string, opt api.Optimizer, in *persistence.Input) *persistence.Run {
	run := &persistence.Run{ID: uuid.New().String(), Strategy: id, Name: opt.Name(),
		EmployeeCount: len(in.Employees), TaskCount: len(in.Tasks)}
	run.Started = time.Now()
	run.Result = opt.Optimize(in.Employees, in.Tasks)
	dur := time.Since(run.Started)
	run.DurationMs = float64(dur.Microseconds()) / 1000

	data.metrics.optimizeDur.WithLabelValues(id).Observe(dur.Seconds())
	data.metrics.runs.WithLabelValues(id, strconv.FormatBool(run.Result.Feasible)).Inc()
	data.metrics.taskCount.Observe(float64(run.TaskCount))
	cmdapp.Log.Infof("Run %s (%s) done in %.3fms, feasible: %t", run.ID, id, run.DurationMs, run.Result.Feasible)
	return run
}

type runHandler struct {
	data *ServiceData
}

func (h *runHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	cmdapp.Log.Infof("Run get %s", id)
	if h.data.RunProvider == nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	run, err := h.data.RunProvider.Get(id)
	if errors.Cause(err) == persistence.ErrNotFound {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Can not load run", http.StatusInternalServerError)
		cmdapp.Log.Error(err)
		return
	}
	writeJSON(w, run)
}

func strategiesHandler(w http.ResponseWriter, r *http.Request) {
	res := make([]strategyInfo, 0)
	for _, n := range strategy.Names() {
		opt, err := strategy.New(n)
		if err != nil {
			http.Error(w, "Can not init strategy", http.StatusInternalServerError)
			cmdapp.Log.Error(err)
			return
		}
		res = append(res, strategyInfo{ID: n, Name: opt.Name()})
	}
	writeJSON(w, res)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(data)
	if err != nil {
		http.Error(w, "Can not prepare result", http.StatusInternalServerError)
		cmdapp.Log.Error(err)
	}
}
