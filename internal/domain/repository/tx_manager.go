package repository

import "context"

// TxManager runs fn inside a database transaction. The context passed to
// fn carries the transaction; repositories pick it up so every call in fn
// joins the same transaction. fn returning an error rolls everything back.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
