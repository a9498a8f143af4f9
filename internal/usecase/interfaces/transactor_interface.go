package interfaces

import "context"

// ITransactor runs fn inside one database transaction.
//
// Repositories called with the ctx handed to fn join that transaction. A
// non-nil error from fn rolls everything back.
type ITransactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
