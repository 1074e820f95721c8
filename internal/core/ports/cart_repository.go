// Package ports defines the persistence contracts of the checkout core.
// Adapters under internal/adapters/out implement them.
package ports

import (
	"context"

	"checkout/internal/core/domain/model/cart"
	"checkout/internal/core/domain/model/kernel"
)

// CartRepository stores cart aggregates together with their offered
// delivery modes and the selected mode code.
type CartRepository interface {
	// Add persists a new cart. The cart must be valid and not stored yet.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update replaces the stored state of an existing cart: the offered
	// delivery modes in offer order and the selection.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// Get returns the cart with id or an *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error)

	// GetAllWithoutDeliveryMode returns up to limit carts that offer at
	// least one delivery mode but have none selected, oldest first.
	GetAllWithoutDeliveryMode(ctx context.Context, limit int) ([]*cart.Cart, error)
}
