package cart

import (
	"errors"
	"fmt"
	"slices"

	"checkout/internal/core/domain/model/deliverymode"
	"checkout/internal/core/domain/model/kernel"
)

var (
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

	// ErrDeliveryModeAlreadyExists is returned when a code is added twice.
	ErrDeliveryModeAlreadyExists = errors.New("delivery mode already exists in cart")

	// ErrDeliveryModeNotAvailable is returned when selecting a code the cart does not offer.
	ErrDeliveryModeNotAvailable = errors.New("delivery mode is not available for cart")
)

// ModeSelector resolves delivery modes and preferences into one mode code.
// services.DeliveryModeSelector implements it.
type ModeSelector interface {
	SelectPreferredMode(modes []deliverymode.DeliveryMode, preferences deliverymode.Preferences) (string, error)
}

// Cart is the aggregate root of checkout. Delivery modes keep the order in
// which they were offered; that order breaks cost ties when selecting.
type Cart struct {
	id               kernel.UUID
	deliveryModes    []deliverymode.DeliveryMode
	deliveryModeCode *string
	isConstructed    bool
}

// NewCart creates an empty cart without delivery modes.
func NewCart(id kernel.UUID) (*Cart, error) {
	c := &Cart{
		deliveryModes: make([]deliverymode.DeliveryMode, 0),
		isConstructed: true,
	}

	if err := c.setID(id); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCart rebuilds a cart from storage. deliveryModeCode may be nil.
func RestoreCart(
	id kernel.UUID,
	modes []deliverymode.DeliveryMode,
	deliveryModeCode *string,
) (*Cart, error) {
	c, err := NewCart(id)
	if err != nil {
		return nil, err
	}

	if err = c.ReplaceDeliveryModes(modes); err != nil {
		return nil, err
	}

	if deliveryModeCode != nil {
		if err = c.SetDeliveryMode(*deliveryModeCode); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

func (c *Cart) IsEqual(other *Cart) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Cart) ID() kernel.UUID {
	return c.id
}

// DeliveryModes returns a copy of the offered modes in offer order.
func (c *Cart) DeliveryModes() []deliverymode.DeliveryMode {
	return slices.Clone(c.deliveryModes)
}

// DeliveryModeCode returns the selected code, nil when nothing is selected.
func (c *Cart) DeliveryModeCode() *string {
	if c.deliveryModeCode == nil {
		return nil
	}
	code := *c.deliveryModeCode
	return &code
}

func (c *Cart) HasDeliveryMode() bool {
	return c.deliveryModeCode != nil
}

// DeliveryMode returns the selected mode.
func (c *Cart) DeliveryMode() (deliverymode.DeliveryMode, bool) {
	if c.deliveryModeCode == nil {
		return deliverymode.DeliveryMode{}, false
	}
	return c.findDeliveryMode(*c.deliveryModeCode)
}

// AddDeliveryMode offers one more mode for the cart.
func (c *Cart) AddDeliveryMode(mode deliverymode.DeliveryMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	if _, exists := c.findDeliveryMode(mode.Code()); exists {
		return fmt.Errorf("%w: %q", ErrDeliveryModeAlreadyExists, mode.Code())
	}

	c.deliveryModes = append(c.deliveryModes, mode)
	return nil
}

// ReplaceDeliveryModes swaps the offered modes. The current selection is
// kept only if its code is still offered.
func (c *Cart) ReplaceDeliveryModes(modes []deliverymode.DeliveryMode) error {
	seen := make(map[string]struct{}, len(modes))
	for _, m := range modes {
		if err := m.Validate(); err != nil {
			return err
		}
		if _, dup := seen[m.Code()]; dup {
			return fmt.Errorf("%w: %q", ErrDeliveryModeAlreadyExists, m.Code())
		}
		seen[m.Code()] = struct{}{}
	}

	c.deliveryModes = slices.Clone(modes)
	if c.deliveryModes == nil {
		c.deliveryModes = make([]deliverymode.DeliveryMode, 0)
	}

	if c.deliveryModeCode != nil {
		if _, ok := seen[*c.deliveryModeCode]; !ok {
			c.deliveryModeCode = nil
		}
	}

	return nil
}

// SetDeliveryMode selects one of the offered modes by code.
func (c *Cart) SetDeliveryMode(code string) error {
	if _, ok := c.findDeliveryMode(code); !ok {
		return fmt.Errorf("%w: %q", ErrDeliveryModeNotAvailable, code)
	}

	c.deliveryModeCode = &code
	return nil
}

func (c *Cart) ClearDeliveryMode() {
	c.deliveryModeCode = nil
}

// SelectPreferredDeliveryMode lets selector pick among the offered modes and
// stores the result. The selector's error (services.ErrNoCandidates for a
// cart without modes) is returned unchanged and the selection is left as is.
func (c *Cart) SelectPreferredDeliveryMode(
	selector ModeSelector,
	preferences deliverymode.Preferences,
) (string, error) {
	code, err := selector.SelectPreferredMode(c.DeliveryModes(), preferences)
	if err != nil {
		return "", err
	}

	if err = c.SetDeliveryMode(code); err != nil {
		return "", err
	}

	return code, nil
}

func (c *Cart) findDeliveryMode(code string) (deliverymode.DeliveryMode, bool) {
	for _, m := range c.deliveryModes {
		if m.Code() == code {
			return m, true
		}
	}
	return deliverymode.DeliveryMode{}, false
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}
