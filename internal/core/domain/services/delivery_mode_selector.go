package services

import (
	"errors"
	"fmt"

	"checkout/internal/core/domain/model/deliverymode"
)

// ErrNoCandidates is returned when there is no delivery mode to choose from.
var ErrNoCandidates = errors.New("no delivery mode candidates")

// DeliveryModeSelector picks the delivery mode a cart should default to.
//
// Candidates are ordered by ascending cost (stable, so equal costs keep their
// input order) and the preference list is walked front to back:
//   - FREE matches the cheapest mode if it costs nothing;
//   - LEAST_EXPENSIVE matches the cheapest mode that is not free;
//   - MOST_EXPENSIVE always matches the most expensive mode;
//   - a literal code matches the mode with that code.
//
// The first match wins. When nothing matches, or the list is empty, the
// cheapest mode is returned.
//
// Example:
//
//	selector := services.NewDeliveryModeSelector()
//	prefs, _ := deliverymode.ParsePreferences([]string{"FREE", "LEAST_EXPENSIVE"})
//	code, err := selector.SelectPreferredMode(modes, prefs)
type DeliveryModeSelector struct{}

func NewDeliveryModeSelector() DeliveryModeSelector {
	return DeliveryModeSelector{}
}

// SelectPreferredMode returns the code of the preferred mode. It fails with
// ErrNoCandidates for an empty modes slice and with a validation error for
// modes or preferences that were not built through their constructors.
func (s DeliveryModeSelector) SelectPreferredMode(
	modes []deliverymode.DeliveryMode,
	preferences deliverymode.Preferences,
) (string, error) {
	if len(modes) == 0 {
		return "", ErrNoCandidates
	}

	for i, m := range modes {
		if err := m.Validate(); err != nil {
			return "", fmt.Errorf("delivery mode[%d]: %w", i, err)
		}
	}

	if err := preferences.Validate(); err != nil {
		return "", err
	}

	sorted := deliverymode.SortByCost(modes)
	for _, preference := range preferences {
		if match, ok := s.match(sorted, preference); ok {
			return match.Code(), nil
		}
	}

	return sorted[0].Code(), nil
}

// match applies a single preference to modes already sorted by cost.
func (s DeliveryModeSelector) match(
	sorted []deliverymode.DeliveryMode,
	preference deliverymode.Preference,
) (deliverymode.DeliveryMode, bool) {
	switch preference.Policy() {
	case deliverymode.PolicyFree:
		if sorted[0].IsFree() {
			return sorted[0], true
		}
	case deliverymode.PolicyLeastExpensive:
		for _, m := range sorted {
			if !m.IsFree() {
				return m, true
			}
		}
	case deliverymode.PolicyMostExpensive:
		return sorted[len(sorted)-1], true
	case deliverymode.PolicyCode:
		for _, m := range sorted {
			if m.Code() == preference.Code() {
				return m, true
			}
		}
	case deliverymode.PolicyUnknown:
	}

	return deliverymode.DeliveryMode{}, false
}
