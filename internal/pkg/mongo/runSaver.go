package mongo

import (
	"context"

	"github.com/airenas/workopt/internal/pkg/cmdapp"
	"github.com/airenas/workopt/internal/pkg/persistence"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RunSaver saves optimization runs to mongo db
type RunSaver struct {
	SessionProvider *SessionProvider
}

// NewRunSaver creates RunSaver instance
func NewRunSaver(sessionProvider *SessionProvider) (*RunSaver, error) {
	f := RunSaver{SessionProvider: sessionProvider}
	return &f, nil
}

// Save saves run to DB
func (ss *RunSaver) Save(run *persistence.Run) error {
	cmdapp.Log.Infof("Saving run %s (%s)", run.ID, run.Strategy)

	ctx, cancel := mongoContext()
	defer cancel()

	session, err := ss.SessionProvider.NewSession()
	if err != nil {
		return err
	}
	defer session.EndSession(context.Background())

	c := session.Client().Database(store).Collection(optimizationTable)
	_, err = c.ReplaceOne(ctx, bson.M{"ID": sanitize(run.ID)}, run, options.Replace().SetUpsert(true))
	return err
}
