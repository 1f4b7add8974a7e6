package environments

import (
	"github.com/zeu5/bandit-testing/core"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// BernoulliEnvironment pays a reward of 1 with a fixed per-action
// probability and 0 otherwise
type BernoulliEnvironment struct {
	arms
	rewards []distuv.Bernoulli
}

var _ core.Environment = &BernoulliEnvironment{}

// NewBernoulliEnvironment draws the success probability of each action
// uniformly from [0, 1)
func NewBernoulliEnvironment(numActions int, src rand.Source) (*BernoulliEnvironment, error) {
	if numActions < 2 {
		return nil, core.ConfigurationError("bandit needs at least 2 actions, got %d", numActions)
	}
	uniform := distuv.Uniform{Min: 0, Max: 1, Src: src}
	means := make([]float64, numActions)
	for i := range means {
		means[i] = uniform.Rand()
	}
	return NewBernoulliEnvironmentWithMeans(means, src)
}

func NewBernoulliEnvironmentWithMeans(means []float64, src rand.Source) (*BernoulliEnvironment, error) {
	for i, p := range means {
		if p < 0 || p > 1 {
			return nil, core.ConfigurationError("success probability of action %d is %v, not in [0, 1]", i, p)
		}
	}
	a, err := newArms(means)
	if err != nil {
		return nil, err
	}
	rewards := make([]distuv.Bernoulli, len(means))
	for i, p := range a.means {
		rewards[i] = distuv.Bernoulli{P: p, Src: src}
	}
	return &BernoulliEnvironment{
		arms:    a,
		rewards: rewards,
	}, nil
}

func (b *BernoulliEnvironment) Act(action int) (float64, error) {
	if err := b.validAction(action); err != nil {
		return 0, err
	}
	return b.rewards[action].Rand(), nil
}

type BernoulliEnvironmentConstructor struct {
	NumActions int
}

var _ core.EnvironmentConstructor = &BernoulliEnvironmentConstructor{}

func NewBernoulliEnvironmentConstructor(numActions int) *BernoulliEnvironmentConstructor {
	return &BernoulliEnvironmentConstructor{
		NumActions: numActions,
	}
}

func (b *BernoulliEnvironmentConstructor) NewEnvironment(_ int, src rand.Source) (core.Environment, error) {
	return NewBernoulliEnvironment(b.NumActions, src)
}
