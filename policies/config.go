package policies

import (
	"fmt"
	"math"
	"strings"

	"github.com/zeu5/bandit-testing/core"
)

// Kind names one of the action selection strategies
type Kind string

const (
	EGreedy    Kind = "egreedy"
	Optimistic Kind = "optimistic"
	UCB        Kind = "ucb"
	Random     Kind = "random"
)

// Config describes a policy. Only the parameters of the selected kind
// are read: Epsilon for EGreedy, InitialValue and LearningRate for
// Optimistic, C for UCB.
type Config struct {
	Kind         Kind    `json:"kind" yaml:"kind"`
	Epsilon      float64 `json:"epsilon,omitempty" yaml:"epsilon,omitempty"`
	InitialValue float64 `json:"initial_value,omitempty" yaml:"initial_value,omitempty"`
	LearningRate float64 `json:"learning_rate,omitempty" yaml:"learning_rate,omitempty"`
	C            float64 `json:"c,omitempty" yaml:"c,omitempty"`
}

func (c Config) kind() Kind {
	return Kind(strings.ToLower(string(c.Kind)))
}

func (c Config) Validate() error {
	switch c.kind() {
	case EGreedy:
		return checkEpsilon(c.Epsilon)
	case Optimistic:
		if !(c.LearningRate > 0 && c.LearningRate <= 1) {
			return core.ConfigurationError("learning rate must be in (0, 1], got %v", c.LearningRate)
		}
		if math.IsNaN(c.InitialValue) || math.IsInf(c.InitialValue, 0) {
			return core.ConfigurationError("initial value must be finite, got %v", c.InitialValue)
		}
		return nil
	case UCB:
		if !(c.C >= 0) || math.IsInf(c.C, 1) {
			return core.ConfigurationError("confidence coefficient must be finite and >= 0, got %v", c.C)
		}
		return nil
	case Random:
		return nil
	}
	return core.ConfigurationError("unknown policy kind %q", c.Kind)
}

// Constructor returns the constructor of the configured policy
func (c Config) Constructor() (core.PolicyConstructor, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.kind() {
	case EGreedy:
		return NewEGreedyPolicyConstructor(c.Epsilon), nil
	case Optimistic:
		return NewOptimisticPolicyConstructor(c.InitialValue, c.LearningRate), nil
	case UCB:
		return NewUCBPolicyConstructor(c.C), nil
	default:
		return &RandomPolicyConstructor{}, nil
	}
}

// Name is a short label of the policy and its parameters
func (c Config) Name() string {
	switch c.kind() {
	case EGreedy:
		return fmt.Sprintf("egreedy(e=%v)", c.Epsilon)
	case Optimistic:
		return fmt.Sprintf("optimistic(q0=%v,lr=%v)", c.InitialValue, c.LearningRate)
	case UCB:
		return fmt.Sprintf("ucb(c=%v)", c.C)
	}
	return string(c.kind())
}
