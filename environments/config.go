package environments

import (
	"strings"

	"github.com/zeu5/bandit-testing/core"
)

// Kind names a family of reward distributions
type Kind string

const (
	Bernoulli Kind = "bernoulli"
	Gaussian  Kind = "gaussian"
)

type Config struct {
	Kind       Kind `json:"kind" yaml:"kind"`
	NumActions int  `json:"num_actions" yaml:"num_actions"`
}

func (c Config) Validate() error {
	if c.NumActions < 2 {
		return core.ConfigurationError("bandit needs at least 2 actions, got %d", c.NumActions)
	}
	switch Kind(strings.ToLower(string(c.Kind))) {
	case Bernoulli, Gaussian, "":
		return nil
	}
	return core.ConfigurationError("unknown environment kind %q", c.Kind)
}

// Constructor returns the constructor described by the config. An empty
// kind selects the Bernoulli bandit.
func (c Config) Constructor() (core.EnvironmentConstructor, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if Kind(strings.ToLower(string(c.Kind))) == Gaussian {
		return NewGaussianEnvironmentConstructor(c.NumActions), nil
	}
	return NewBernoulliEnvironmentConstructor(c.NumActions), nil
}
