// Package commands holds the write side of the checkout service. Every
// command is built by a validating constructor, and every handler runs in
// its own unit of work: Validate, Begin, deferred Rollback, repository
// calls, Commit.
package commands

import (
	"context"

	"checkout/internal/core/ports"
)

type (
	// TxManager is the transaction half of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CartRepoFactory returns a cart repository bound to the current transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// CartUoW is what cart command handlers need from a unit of work.
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//	    return err
	//	}
	//	defer uow.Rollback(ctx)
	//
	//	repo := uow.CartRepository()
	//	// ... load, change, save
	//
	//	return uow.Commit(ctx)
	CartUoW interface {
		TxManager
		CartRepoFactory
	}

	// CartUoWFactory creates a fresh CartUoW per Handle call.
	CartUoWFactory interface {
		Create() CartUoW
	}
)
