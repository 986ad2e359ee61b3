package ports

import "context"

// TransactionManager scopes a function to a storage transaction: begin on
// entry, commit on success, roll back when fn returns an error. Mutating
// service operations run inside WithTransaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
