package deliverymode

import (
	"errors"
	"slices"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var ErrDeliveryModeIsNotConstructed = errors.New("DeliveryMode must be created via NewDeliveryMode constructor")

// DeliveryMode is a shipping option offered for a cart. Its code is unique
// within a candidate set; its cost is never negative.
type DeliveryMode struct { //nolint:recvcheck //using for validation
	code  string
	name  string
	cost  kernel.Price
	guard guard.ConstructorGuard
}

// NewDeliveryMode validates that code is not empty and cost was constructed.
// The name is optional display text.
func NewDeliveryMode(code string, name string, cost kernel.Price) (DeliveryMode, error) {
	mode := DeliveryMode{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		mode.setCode(code),
		mode.setCost(cost),
	); err != nil {
		return DeliveryMode{}, err
	}

	return mode, nil
}

func (m DeliveryMode) Validate() error {
	return m.guard.Validate(ErrDeliveryModeIsNotConstructed)
}

func (m DeliveryMode) Code() string {
	return m.code
}

func (m DeliveryMode) Name() string {
	return m.name
}

func (m DeliveryMode) Cost() kernel.Price {
	return m.cost
}

// IsFree reports whether the mode costs nothing.
func (m DeliveryMode) IsFree() bool {
	return m.cost.IsFree()
}

// IsEqual compares every attribute, cost by value.
func (m DeliveryMode) IsEqual(other DeliveryMode) bool {
	return m.code == other.code && m.name == other.name && m.cost.IsEqual(other.cost)
}

func (m *DeliveryMode) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	m.code = code
	return nil
}

func (m *DeliveryMode) setCost(cost kernel.Price) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	m.cost = cost
	return nil
}

// CompareByCost returns 1 when a costs more than b, -1 when it costs less and
// 0 when both cost the same.
func CompareByCost(a, b DeliveryMode) int {
	return a.cost.Compare(b.cost)
}

// SortByCost returns a copy of modes ordered by ascending cost. Modes with the
// same cost keep their relative order.
func SortByCost(modes []DeliveryMode) []DeliveryMode {
	sorted := slices.Clone(modes)
	slices.SortStableFunc(sorted, CompareByCost)
	return sorted
}
