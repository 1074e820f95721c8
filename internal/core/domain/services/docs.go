// Package services holds domain services of the checkout domain: logic that
// works on several value objects at once and belongs to none of them.
//
// The package includes:
//   - DeliveryModeSelector: resolves the available delivery modes and an
//     ordered preference list into the code of one delivery mode
package services
