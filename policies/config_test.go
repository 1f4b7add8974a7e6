package policies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/bandit-testing/core"
	"golang.org/x/exp/rand"
)

func TestConfigConstructor(t *testing.T) {
	cases := []struct {
		config Config
		name   string
	}{
		{Config{Kind: EGreedy, Epsilon: 0.1}, "egreedy(e=0.1)"},
		{Config{Kind: Optimistic, InitialValue: 2, LearningRate: 0.1}, "optimistic(q0=2,lr=0.1)"},
		{Config{Kind: UCB, C: 0.5}, "ucb(c=0.5)"},
		{Config{Kind: Random}, "random"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.NoError(t, c.config.Validate())
			assert.Equal(t, c.name, c.config.Name())

			constructor, err := c.config.Constructor()
			require.NoError(t, err)
			p, err := constructor.NewPolicy(4, rand.NewSource(1))
			require.NoError(t, err)
			assert.Len(t, p.Values(), 4)

			a := p.PickAction(&core.StepContext{Step: 0, RepetitionContext: &core.RepetitionContext{}})
			assert.True(t, a >= 0 && a < 4)
		})
	}
}

func TestConfigKindIsCaseInsensitive(t *testing.T) {
	c := Config{Kind: "UCB", C: 1}
	require.NoError(t, c.Validate())
	constructor, err := c.Constructor()
	require.NoError(t, err)
	assert.IsType(t, &UCBPolicyConstructor{}, constructor)
}

func TestConfigValidate(t *testing.T) {
	invalid := []Config{
		{Kind: EGreedy, Epsilon: 2},
		{Kind: Optimistic, InitialValue: 1, LearningRate: 0},
		{Kind: UCB, C: -0.1},
		{Kind: "softmax"},
		{},
	}
	for _, c := range invalid {
		assert.ErrorIs(t, c.Validate(), core.ErrConfiguration, "%+v", c)
		_, err := c.Constructor()
		assert.ErrorIs(t, err, core.ErrConfiguration, "%+v", c)
	}
}
