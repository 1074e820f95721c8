package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary. Callers Begin, work through the
// repositories it hands out, then Commit or Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback returns an error when no transaction is active.
	Rollback(ctx context.Context) error

	// CartRepository is bound to the transaction started by Begin, or to
	// the plain connection when none is active.
	CartRepository() CartRepository
}
