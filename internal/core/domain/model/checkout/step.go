package checkout

import (
	"errors"
	"fmt"
	"slices"

	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

// StepType names what a checkout step collects.
type StepType string

const (
	StepTypeShippingAddress StepType = "shippingAddress"
	StepTypeDeliveryMode    StepType = "deliveryMode"
	StepTypePaymentDetails  StepType = "paymentDetails"
	StepTypeReviewOrder     StepType = "reviewOrder"
)

func (t StepType) Validate() error {
	switch t {
	case StepTypeShippingAddress, StepTypeDeliveryMode, StepTypePaymentDetails, StepTypeReviewOrder:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("step type", fmt.Errorf("%q is not a valid step type", string(t)))
	}
}

var ErrStepIsNotConstructed = errors.New("Step must be created via NewStep constructor")

// Step is one page of the checkout. A step may cover several step types,
// e.g. a combined address and delivery page.
type Step struct { //nolint:recvcheck //using for validation
	id        string
	name      string
	routeName string
	types     []StepType
	guard     guard.ConstructorGuard
}

func NewStep(id string, name string, routeName string, types ...StepType) (Step, error) {
	step := Step{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		step.setID(id),
		step.setRouteName(routeName),
		step.setTypes(types),
	); err != nil {
		return Step{}, err
	}

	return step, nil
}

func (s Step) Validate() error {
	return s.guard.Validate(ErrStepIsNotConstructed)
}

func (s Step) ID() string {
	return s.id
}

func (s Step) Name() string {
	return s.name
}

func (s Step) RouteName() string {
	return s.routeName
}

func (s Step) Types() []StepType {
	return slices.Clone(s.types)
}

// HasType reports whether the step covers t.
func (s Step) HasType(t StepType) bool {
	return slices.Contains(s.types, t)
}

func (s *Step) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("step id")
	}
	s.id = id
	return nil
}

func (s *Step) setRouteName(routeName string) error {
	if routeName == "" {
		return errs.NewValueIsRequiredError("step route name")
	}
	s.routeName = routeName
	return nil
}

func (s *Step) setTypes(types []StepType) error {
	if len(types) == 0 {
		return errs.NewValueIsRequiredError("step types")
	}
	for _, t := range types {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	s.types = slices.Clone(types)
	return nil
}
