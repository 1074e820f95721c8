// Package yamlconfig loads the checkout flow from a YAML file:
//
//	express_checkout: false
//	guest_checkout: true
//	default_delivery_mode: [FREE, LEAST_EXPENSIVE]
//	steps:
//	  - id: shippingAddress
//	    name: checkoutProgress.shippingAddress
//	    route: checkoutShippingAddress
//	    types: [shippingAddress]
//
// ${VAR} references are expanded from the environment before parsing.
// Omitted steps or default_delivery_mode fall back to checkout.DefaultFlow.
package yamlconfig

import (
	"fmt"
	"os"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/deliverymode"

	"gopkg.in/yaml.v3"
)

type FlowConfig struct {
	ExpressCheckout     bool         `yaml:"express_checkout"`
	GuestCheckout       bool         `yaml:"guest_checkout"`
	DefaultDeliveryMode []string     `yaml:"default_delivery_mode"`
	Steps               []StepConfig `yaml:"steps"`
}

type StepConfig struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Route string   `yaml:"route"`
	Types []string `yaml:"types"`
}

// LoadFlow reads path and builds the flow. An empty path yields the default flow.
func LoadFlow(path string) (checkout.Flow, error) {
	if path == "" {
		return checkout.DefaultFlow(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return checkout.Flow{}, fmt.Errorf("checkout config: read: %w", err)
	}

	return ParseFlow(data)
}

// ParseFlow builds the flow from YAML bytes.
func ParseFlow(data []byte) (checkout.Flow, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg FlowConfig
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return checkout.Flow{}, fmt.Errorf("checkout config: parse: %w", err)
	}

	flow, err := cfg.Flow()
	if err != nil {
		return checkout.Flow{}, fmt.Errorf("checkout config: %w", err)
	}

	return flow, nil
}

// Flow validates the configuration and converts it into a checkout.Flow.
func (c FlowConfig) Flow() (checkout.Flow, error) {
	defaults := checkout.DefaultFlow()

	steps := defaults.Steps()
	if len(c.Steps) > 0 {
		steps = make([]checkout.Step, 0, len(c.Steps))
		for i, sc := range c.Steps {
			step, err := sc.step()
			if err != nil {
				return checkout.Flow{}, fmt.Errorf("steps[%d]: %w", i, err)
			}
			steps = append(steps, step)
		}
	}

	preferences := defaults.DefaultDeliveryMode()
	if c.DefaultDeliveryMode != nil {
		parsed, err := deliverymode.ParsePreferences(c.DefaultDeliveryMode)
		if err != nil {
			return checkout.Flow{}, fmt.Errorf("default_delivery_mode: %w", err)
		}
		preferences = parsed
	}

	return checkout.NewFlow(steps,
		checkout.WithExpressCheckout(c.ExpressCheckout),
		checkout.WithGuestCheckout(c.GuestCheckout),
		checkout.WithDefaultDeliveryMode(preferences),
	)
}

func (s StepConfig) step() (checkout.Step, error) {
	types := make([]checkout.StepType, 0, len(s.Types))
	for _, t := range s.Types {
		types = append(types, checkout.StepType(t))
	}
	return checkout.NewStep(s.ID, s.Name, s.Route, types...)
}
