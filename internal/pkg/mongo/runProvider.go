package mongo

import (
	"context"

	"github.com/airenas/workopt/internal/pkg/cmdapp"
	"github.com/airenas/workopt/internal/pkg/persistence"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RunProvider loads optimization runs from mongo db
type RunProvider struct {
	SessionProvider *SessionProvider
}

// NewRunProvider creates RunProvider instance
func NewRunProvider(sessionProvider *SessionProvider) (*RunProvider, error) {
	f := RunProvider{SessionProvider: sessionProvider}
	return &f, nil
}

// Get retrieves run from DB
func (rp *RunProvider) Get(id string) (*persistence.Run, error) {
	cmdapp.Log.Infof("Retrieving run %s", id)

	ctx, cancel := mongoContext()
	defer cancel()

	session, err := rp.SessionProvider.NewSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(context.Background())

	c := session.Client().Database(store).Collection(optimizationTable)
	var res persistence.Run
	err = c.FindOne(ctx, bson.M{"ID": sanitize(id)}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, persistence.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "Can't load run "+id)
	}
	return &res, nil
}
