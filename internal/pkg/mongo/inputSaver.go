package mongo

import (
	"context"

	"github.com/airenas/workopt/internal/pkg/cmdapp"
	"github.com/airenas/workopt/internal/pkg/strategy/api"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InputSaver upserts employees and tasks to mongo db
type InputSaver struct {
	SessionProvider *SessionProvider
}

// NewInputSaver creates InputSaver instance
func NewInputSaver(sessionProvider *SessionProvider) (*InputSaver, error) {
	f := InputSaver{SessionProvider: sessionProvider}
	return &f, nil
}

// Save upserts employees and tasks by their IDs
func (ss *InputSaver) Save(es []*api.Employee, ts []*api.Task) error {
	cmdapp.Log.Infof("Saving %d employees, %d tasks", len(es), len(ts))

	ctx, cancel := mongoContext()
	defer cancel()

	session, err := ss.SessionProvider.NewSession()
	if err != nil {
		return err
	}
	defer session.EndSession(context.Background())

	db := session.Client().Database(store)
	if len(es) > 0 {
		ms := make([]mongo.WriteModel, len(es))
		for i, e := range es {
			ms[i] = mongo.NewReplaceOneModel().SetFilter(bson.M{"employeeId": e.ID}).
				SetReplacement(e).SetUpsert(true)
		}
		if _, err = db.Collection(employeeTable).BulkWrite(ctx, ms, options.BulkWrite().SetOrdered(true)); err != nil {
			return errors.Wrap(err, "Can't save employees")
		}
	}
	if len(ts) > 0 {
		ms := make([]mongo.WriteModel, len(ts))
		for i, t := range ts {
			ms[i] = mongo.NewReplaceOneModel().SetFilter(bson.M{"taskId": t.ID}).
				SetReplacement(t).SetUpsert(true)
		}
		if _, err = db.Collection(taskTable).BulkWrite(ctx, ms, options.BulkWrite().SetOrdered(true)); err != nil {
			return errors.Wrap(err, "Can't save tasks")
		}
	}
	return nil
}
