// Package kernel holds the value objects shared by every aggregate of the
// checkout domain:
//   - UUID identifies carts and other entities;
//   - Price is a non-negative decimal amount used for delivery costs.
//
// Both are immutable and invalid in their zero value; build them through
// their constructors.
package kernel
