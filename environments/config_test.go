package environments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/bandit-testing/core"
	"golang.org/x/exp/rand"
)

func TestConfigConstructor(t *testing.T) {
	cases := map[Kind]interface{}{
		"":         &BernoulliEnvironment{},
		Bernoulli:  &BernoulliEnvironment{},
		Gaussian:   &GaussianEnvironment{},
		"GAUSSIAN": &GaussianEnvironment{},
	}
	for kind, want := range cases {
		constructor, err := Config{Kind: kind, NumActions: 4}.Constructor()
		require.NoError(t, err, "kind %q", kind)
		env, err := constructor.NewEnvironment(0, rand.NewSource(1))
		require.NoError(t, err)
		assert.IsType(t, want, env)
		assert.Equal(t, 4, env.NumActions())
	}
}

func TestConfigValidate(t *testing.T) {
	assert.ErrorIs(t, Config{Kind: Bernoulli, NumActions: 1}.Validate(), core.ErrConfiguration)
	assert.ErrorIs(t, Config{Kind: "contextual", NumActions: 4}.Validate(), core.ErrConfiguration)

	_, err := Config{Kind: "contextual", NumActions: 4}.Constructor()
	assert.ErrorIs(t, err, core.ErrConfiguration)
}
