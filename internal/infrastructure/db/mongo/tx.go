package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// TxManager scopes service mutations to a MongoDB session transaction:
// commit on success, abort when fn returns an error. When the deployment
// cannot provide a session (standalone servers without replica sets), fn
// runs directly — every mutation here is a single-document write, so the
// storage layer's own guarantees still hold.
type TxManager struct {
	client *mongo.Client
}

func NewTxManager(client *mongo.Client) *TxManager {
	return &TxManager{client: client}
}

func (m *TxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := m.client.StartSession()
	if err != nil {
		return fn(ctx)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
