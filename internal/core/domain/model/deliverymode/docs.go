// Package deliverymode models the delivery options offered for a cart and
// the preference rules used to pick one of them.
//
// The package includes:
//   - DeliveryMode: a shipping option identified by a code, with a cost
//   - Preference: one rule of a preference list, either a policy (FREE,
//     LEAST_EXPENSIVE, MOST_EXPENSIVE) or a literal delivery mode code
//   - Preferences: an ordered list of rules, earlier rules win
//   - CompareByCost / SortByCost: the cost ordering shared by the selector
//     and the read side
package deliverymode
