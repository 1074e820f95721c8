package checkout

import (
	"errors"
	"fmt"
	"slices"

	"checkout/internal/core/domain/model/deliverymode"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var (
	ErrFlowIsNotConstructed = errors.New("Flow must be created via NewFlow or DefaultFlow constructor")

	// ErrNoNextStep is returned when navigating forward from the last step.
	ErrNoNextStep = errors.New("no next checkout step")

	// ErrNoPreviousStep is returned when navigating back from the first step.
	ErrNoPreviousStep = errors.New("no previous checkout step")
)

// Flow is the configured checkout: an ordered list of steps with unique ids
// and route names, plus flow-wide settings.
type Flow struct {
	steps               []Step
	express             bool
	guest               bool
	defaultDeliveryMode deliverymode.Preferences
	guard               guard.ConstructorGuard
}

// FlowOption tunes the settings of a new flow.
type FlowOption func(*Flow)

// WithExpressCheckout lets returning shoppers skip straight to review.
func WithExpressCheckout(enabled bool) FlowOption {
	return func(f *Flow) {
		f.express = enabled
	}
}

// WithGuestCheckout allows checkout without an account.
func WithGuestCheckout(enabled bool) FlowOption {
	return func(f *Flow) {
		f.guest = enabled
	}
}

// WithDefaultDeliveryMode sets the preference list applied to carts that
// have no delivery mode yet.
func WithDefaultDeliveryMode(preferences deliverymode.Preferences) FlowOption {
	return func(f *Flow) {
		f.defaultDeliveryMode = slices.Clone(preferences)
	}
}

func NewFlow(steps []Step, opts ...FlowOption) (Flow, error) {
	flow := Flow{guard: guard.NewConstructorGuard()}
	for _, opt := range opts {
		opt(&flow)
	}

	if err := errors.Join(
		flow.setSteps(steps),
		flow.defaultDeliveryMode.Validate(),
	); err != nil {
		return Flow{}, err
	}

	return flow, nil
}

// DefaultFlow is address, delivery mode, payment, review; express and guest
// checkout disabled; free delivery preferred, then the cheapest paid one.
func DefaultFlow() Flow {
	steps := []Step{
		mustStep("shippingAddress", "checkoutProgress.shippingAddress", "checkoutShippingAddress",
			StepTypeShippingAddress),
		mustStep("deliveryMode", "checkoutProgress.deliveryMode", "checkoutDeliveryMode",
			StepTypeDeliveryMode),
		mustStep("paymentDetails", "checkoutProgress.paymentDetails", "checkoutPaymentDetails",
			StepTypePaymentDetails),
		mustStep("reviewOrder", "checkoutProgress.reviewOrder", "checkoutReviewOrder",
			StepTypeReviewOrder),
	}

	flow, err := NewFlow(steps, WithDefaultDeliveryMode(deliverymode.Preferences{
		deliverymode.PreferFree(),
		deliverymode.PreferLeastExpensive(),
	}))
	if err != nil {
		panic(err)
	}
	return flow
}

func mustStep(id, name, routeName string, types ...StepType) Step {
	step, err := NewStep(id, name, routeName, types...)
	if err != nil {
		panic(err)
	}
	return step
}

func (f Flow) Validate() error {
	return f.guard.Validate(ErrFlowIsNotConstructed)
}

func (f Flow) Steps() []Step {
	return slices.Clone(f.steps)
}

func (f Flow) IsExpressCheckout() bool {
	return f.express
}

func (f Flow) IsGuestCheckout() bool {
	return f.guest
}

func (f Flow) DefaultDeliveryMode() deliverymode.Preferences {
	return slices.Clone(f.defaultDeliveryMode)
}

// StepByType returns the first step covering t.
func (f Flow) StepByType(t StepType) (Step, error) {
	for _, step := range f.steps {
		if step.HasType(t) {
			return step, nil
		}
	}
	return Step{}, errs.NewObjectNotFoundError("step type", string(t))
}

// StepRouteByType returns the route of the first step covering t.
func (f Flow) StepRouteByType(t StepType) (string, error) {
	step, err := f.StepByType(t)
	if err != nil {
		return "", err
	}
	return step.RouteName(), nil
}

func (f Flow) FirstStepRoute() string {
	if len(f.steps) == 0 {
		return ""
	}
	return f.steps[0].RouteName()
}

// StepIndex returns the position of the step with routeName, -1 when no step has it.
func (f Flow) StepIndex(routeName string) int {
	return slices.IndexFunc(f.steps, func(s Step) bool {
		return s.RouteName() == routeName
	})
}

// NextStep returns the step after the one with routeName.
func (f Flow) NextStep(routeName string) (Step, error) {
	idx, err := f.indexOf(routeName)
	if err != nil {
		return Step{}, err
	}
	if idx+1 >= len(f.steps) {
		return Step{}, fmt.Errorf("%w: %q is the last step", ErrNoNextStep, routeName)
	}
	return f.steps[idx+1], nil
}

// PreviousStep returns the step before the one with routeName.
func (f Flow) PreviousStep(routeName string) (Step, error) {
	idx, err := f.indexOf(routeName)
	if err != nil {
		return Step{}, err
	}
	if idx == 0 {
		return Step{}, fmt.Errorf("%w: %q is the first step", ErrNoPreviousStep, routeName)
	}
	return f.steps[idx-1], nil
}

func (f Flow) NextStepRoute(routeName string) (string, error) {
	step, err := f.NextStep(routeName)
	if err != nil {
		return "", err
	}
	return step.RouteName(), nil
}

func (f Flow) PreviousStepRoute(routeName string) (string, error) {
	step, err := f.PreviousStep(routeName)
	if err != nil {
		return "", err
	}
	return step.RouteName(), nil
}

func (f Flow) indexOf(routeName string) (int, error) {
	idx := f.StepIndex(routeName)
	if idx < 0 {
		return 0, errs.NewObjectNotFoundError("routeName", routeName)
	}
	return idx, nil
}

func (f *Flow) setSteps(steps []Step) error {
	if len(steps) == 0 {
		return errs.NewValueIsRequiredError("checkout steps")
	}

	ids := make(map[string]struct{}, len(steps))
	routes := make(map[string]struct{}, len(steps))
	for i, step := range steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step[%d]: %w", i, err)
		}
		if _, dup := ids[step.ID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("checkout steps",
				fmt.Errorf("duplicate step id %q", step.ID()))
		}
		if _, dup := routes[step.RouteName()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("checkout steps",
				fmt.Errorf("duplicate route name %q", step.RouteName()))
		}
		ids[step.ID()] = struct{}{}
		routes[step.RouteName()] = struct{}{}
	}

	f.steps = slices.Clone(steps)
	return nil
}
