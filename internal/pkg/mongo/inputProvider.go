package mongo

import (
	"context"

	"github.com/airenas/workopt/internal/pkg/cmdapp"
	"github.com/airenas/workopt/internal/pkg/strategy/api"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InputProvider loads employees and tasks from mongo db
type InputProvider struct {
	SessionProvider *SessionProvider
}

// NewInputProvider creates InputProvider instance
func NewInputProvider(sessionProvider *SessionProvider) (*InputProvider, error) {
	f := InputProvider{SessionProvider: sessionProvider}
	return &f, nil
}

// Load retrieves all employees and tasks ordered by ID
func (ip *InputProvider) Load() ([]*api.Employee, []*api.Task, error) {
	cmdapp.Log.Info("Loading employees and tasks")

	ctx, cancel := mongoContext()
	defer cancel()

	session, err := ip.SessionProvider.NewSession()
	if err != nil {
		return nil, nil, err
	}
	defer session.EndSession(context.Background())

	db := session.Client().Database(store)
	es := make([]*api.Employee, 0)
	cursor, err := db.Collection(employeeTable).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "employeeId", Value: 1}}))
	if err != nil {
		return nil, nil, errors.Wrap(err, "Can't load employees")
	}
	if err = cursor.All(ctx, &es); err != nil {
		return nil, nil, errors.Wrap(err, "Can't decode employees")
	}

	ts := make([]*api.Task, 0)
	cursor, err = db.Collection(taskTable).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "taskId", Value: 1}}))
	if err != nil {
		return nil, nil, errors.Wrap(err, "Can't load tasks")
	}
	if err = cursor.All(ctx, &ts); err != nil {
		return nil, nil, errors.Wrap(err, "Can't decode tasks")
	}
	cmdapp.Log.Infof("Loaded %d employees, %d tasks", len(es), len(ts))
	return es, ts, nil
}
