package environments

import (
	"github.com/zeu5/bandit-testing/core"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// GaussianEnvironment is the classic testbed: action means are drawn
// from N(0, 1) and each reward from N(mean, 1)
type GaussianEnvironment struct {
	arms
	rewards []distuv.Normal
}

var _ core.Environment = &GaussianEnvironment{}

func NewGaussianEnvironment(numActions int, src rand.Source) (*GaussianEnvironment, error) {
	if numActions < 2 {
		return nil, core.ConfigurationError("bandit needs at least 2 actions, got %d", numActions)
	}
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	means := make([]float64, numActions)
	for i := range means {
		means[i] = normal.Rand()
	}
	return NewGaussianEnvironmentWithMeans(means, 1, src)
}

func NewGaussianEnvironmentWithMeans(means []float64, sigma float64, src rand.Source) (*GaussianEnvironment, error) {
	if sigma <= 0 {
		return nil, core.ConfigurationError("reward deviation must be positive, got %v", sigma)
	}
	a, err := newArms(means)
	if err != nil {
		return nil, err
	}
	rewards := make([]distuv.Normal, len(means))
	for i, mu := range a.means {
		rewards[i] = distuv.Normal{Mu: mu, Sigma: sigma, Src: src}
	}
	return &GaussianEnvironment{
		arms:    a,
		rewards: rewards,
	}, nil
}

func (g *GaussianEnvironment) Act(action int) (float64, error) {
	if err := g.validAction(action); err != nil {
		return 0, err
	}
	return g.rewards[action].Rand(), nil
}

type GaussianEnvironmentConstructor struct {
	NumActions int
}

var _ core.EnvironmentConstructor = &GaussianEnvironmentConstructor{}

func NewGaussianEnvironmentConstructor(numActions int) *GaussianEnvironmentConstructor {
	return &GaussianEnvironmentConstructor{
		NumActions: numActions,
	}
}

func (g *GaussianEnvironmentConstructor) NewEnvironment(_ int, src rand.Source) (core.Environment, error) {
	return NewGaussianEnvironment(g.NumActions, src)
}
