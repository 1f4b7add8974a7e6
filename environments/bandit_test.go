package environments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/bandit-testing/core"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

func TestBernoulliRewards(t *testing.T) {
	env, err := NewBernoulliEnvironment(10, rand.NewSource(1))
	require.NoError(t, err)
	require.Equal(t, 10, env.NumActions())

	for _, p := range env.Means() {
		assert.True(t, p >= 0 && p <= 1)
	}
	for a := 0; a < env.NumActions(); a++ {
		for i := 0; i < 50; i++ {
			r, err := env.Act(a)
			require.NoError(t, err)
			assert.Contains(t, []float64{0, 1}, r)
		}
	}
}

func TestBernoulliEmpiricalMean(t *testing.T) {
	env, err := NewBernoulliEnvironmentWithMeans([]float64{0.2, 0.8}, rand.NewSource(5))
	require.NoError(t, err)

	samples := 20000
	for a, p := range []float64{0.2, 0.8} {
		sum := 0.0
		for i := 0; i < samples; i++ {
			r, err := env.Act(a)
			require.NoError(t, err)
			sum += r
		}
		assert.InDelta(t, p, sum/float64(samples), 0.02)
	}
}

func TestGaussianEmpiricalMean(t *testing.T) {
	means := []float64{-1, 0.5, 2}
	env, err := NewGaussianEnvironmentWithMeans(means, 1, rand.NewSource(9))
	require.NoError(t, err)
	assert.Equal(t, 2, env.OptimalAction())

	samples := 20000
	for a, mu := range means {
		rewards := make([]float64, samples)
		for i := range rewards {
			rewards[i], err = env.Act(a)
			require.NoError(t, err)
		}
		assert.InDelta(t, mu, floats.Sum(rewards)/float64(samples), 0.05)
	}
}

func TestInvalidAction(t *testing.T) {
	bernoulli, err := NewBernoulliEnvironment(3, rand.NewSource(1))
	require.NoError(t, err)
	gaussian, err := NewGaussianEnvironment(3, rand.NewSource(1))
	require.NoError(t, err)

	for _, env := range []core.Environment{bernoulli, gaussian} {
		for _, a := range []int{-1, 3, 100} {
			_, err := env.Act(a)
			assert.ErrorIs(t, err, core.ErrInvalidAction)
			assert.Contains(t, err.Error(), "[0, 3)")
		}
	}
}

func TestOptimalAction(t *testing.T) {
	env, err := NewBernoulliEnvironmentWithMeans([]float64{0.1, 0.9, 0.9, 0.3}, rand.NewSource(1))
	require.NoError(t, err)
	assert.Equal(t, 1, env.OptimalAction())

	random, err := NewBernoulliEnvironment(10, rand.NewSource(2))
	require.NoError(t, err)
	assert.Equal(t, floats.MaxIdx(random.Means()), random.OptimalAction())
}

func TestSameSeedSameEnvironment(t *testing.T) {
	a, err := NewGaussianEnvironment(5, rand.NewSource(42))
	require.NoError(t, err)
	b, err := NewGaussianEnvironment(5, rand.NewSource(42))
	require.NoError(t, err)
	assert.Equal(t, a.Means(), b.Means())

	for i := 0; i < 10; i++ {
		ra, _ := a.Act(i % 5)
		rb, _ := b.Act(i % 5)
		assert.Equal(t, ra, rb)
	}
}

func TestInvalidEnvironment(t *testing.T) {
	_, err := NewBernoulliEnvironment(1, rand.NewSource(1))
	assert.ErrorIs(t, err, core.ErrConfiguration)
	_, err = NewBernoulliEnvironmentWithMeans([]float64{0.5, 1.5}, rand.NewSource(1))
	assert.ErrorIs(t, err, core.ErrConfiguration)
	_, err = NewBernoulliEnvironmentWithMeans([]float64{0.5, 0.5}, rand.NewSource(1))
	assert.ErrorIs(t, err, core.ErrConfiguration)
	_, err = NewGaussianEnvironmentWithMeans([]float64{0, 1}, 0, rand.NewSource(1))
	assert.ErrorIs(t, err, core.ErrConfiguration)
}
