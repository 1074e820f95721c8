// Package cart provides the Cart aggregate of the checkout domain.
//
// A cart owns the delivery modes the commerce API offers for it and the
// delivery mode currently selected for checkout.
//
// Key business rules:
//   - delivery mode codes are unique within a cart
//   - a selected delivery mode must be one of the cart's delivery modes
//   - replacing the delivery modes drops a selection that is no longer offered
//   - the preferred delivery mode is resolved by a DeliveryModeSelector
package cart
