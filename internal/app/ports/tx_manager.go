package ports

import "context"

// TxManager runs fn atomically. Repository calls made with the ctx
// passed to fn join the same transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
