// Package bandit runs the bandit experiments: single policy runs and the
// parameter sweeps comparing them
package bandit

import (
	"context"

	"github.com/go-kit/log"
	"github.com/zeu5/bandit-testing/core"
	"github.com/zeu5/bandit-testing/environments"
	"github.com/zeu5/bandit-testing/policies"
)

// Options tunes how Run executes. The zero value runs the repetitions
// sequentially on the Bernoulli bandit with seed 0.
type Options struct {
	Environment environments.Kind
	Parallelism int
	Seed        uint64
	Logger      log.Logger
	Progress    bool
}

// Run simulates nRepetitions independent repetitions of nTimesteps steps
// of the policy of the given kind on a fresh nActions-armed bandit and
// returns the rewards, one row per repetition. The kind overrides
// params.Kind. Every parameter is validated before any simulation
// starts.
func Run(
	ctx context.Context,
	nActions, nTimesteps, nRepetitions int,
	kind policies.Kind,
	params policies.Config,
	opts *Options,
) (*core.RewardMatrix, error) {
	if opts == nil {
		opts = &Options{}
	}
	params.Kind = kind

	envConstructor, err := environments.Config{Kind: opts.Environment, NumActions: nActions}.Constructor()
	if err != nil {
		return nil, err
	}
	policyConstructor, err := params.Constructor()
	if err != nil {
		return nil, err
	}
	rConfig := &core.RunConfig{
		Repetitions: nRepetitions,
		Horizon:     nTimesteps,
		Parallelism: opts.Parallelism,
		Seed:        opts.Seed,
		Logger:      opts.Logger,
		Progress:    opts.Progress,
	}
	if err := rConfig.Validate(); err != nil {
		return nil, err
	}

	e := &core.Experiment{
		Name:        params.Name(),
		Environment: envConstructor,
		Policy:      policyConstructor,
	}
	result, err := e.Run(ctx, rConfig)
	if err != nil {
		return nil, err
	}
	return result.Rewards, nil
}
