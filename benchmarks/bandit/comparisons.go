package bandit

import (
	"github.com/zeu5/bandit-testing/analysis"
	"github.com/zeu5/bandit-testing/benchmarks/common"
	"github.com/zeu5/bandit-testing/core"
	"github.com/zeu5/bandit-testing/policies"
)

var (
	Epsilons      = []float64{0.01, 0.05, 0.1, 0.25}
	Cs            = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0}
	InitialValues = []float64{0.1, 0.5, 1.0, 2.0}
)

const optimisticLearningRate = 0.1

// Names of the comparisons accepted by PrepareComparison
const (
	EpsilonComparison    = "epsilon"
	UCBComparison        = "ucb"
	OptimisticComparison = "optimistic"
	PolicyComparison     = "policies"
)

// PrepareComparison returns the named comparison
func PrepareComparison(flags *common.Flags, name string) (*core.Comparison, error) {
	switch name {
	case EpsilonComparison:
		return PrepareEpsilonComparison(flags)
	case UCBComparison:
		return PrepareUCBComparison(flags)
	case OptimisticComparison:
		return PrepareOptimisticComparison(flags)
	case PolicyComparison:
		return PreparePolicyComparison(flags)
	}
	return nil, core.ConfigurationError("unknown comparison %q", name)
}

func PrepareEpsilonComparison(flags *common.Flags) (*core.Comparison, error) {
	configs := make([]policies.Config, len(Epsilons))
	for i, e := range Epsilons {
		configs[i] = policies.Config{Kind: policies.EGreedy, Epsilon: e}
	}
	return prepareComparison(flags, EpsilonComparison, configs)
}

func PrepareUCBComparison(flags *common.Flags) (*core.Comparison, error) {
	configs := make([]policies.Config, len(Cs))
	for i, c := range Cs {
		configs[i] = policies.Config{Kind: policies.UCB, C: c}
	}
	return prepareComparison(flags, UCBComparison, configs)
}

func PrepareOptimisticComparison(flags *common.Flags) (*core.Comparison, error) {
	configs := make([]policies.Config, len(InitialValues))
	for i, q0 := range InitialValues {
		configs[i] = policies.Config{
			Kind:         policies.Optimistic,
			InitialValue: q0,
			LearningRate: optimisticLearningRate,
		}
	}
	return prepareComparison(flags, OptimisticComparison, configs)
}

// PreparePolicyComparison compares one configuration of every policy
// against the random baseline
func PreparePolicyComparison(flags *common.Flags) (*core.Comparison, error) {
	return prepareComparison(flags, PolicyComparison, []policies.Config{
		{Kind: policies.EGreedy, Epsilon: 0.05},
		{Kind: policies.Optimistic, InitialValue: 1.0, LearningRate: optimisticLearningRate},
		{Kind: policies.UCB, C: 0.25},
		{Kind: policies.Random},
	})
}

func prepareComparison(flags *common.Flags, name string, configs []policies.Config) (*core.Comparison, error) {
	if err := flags.Validate(); err != nil {
		return nil, err
	}
	envConstructor, err := flags.EnvironmentConfig().Constructor()
	if err != nil {
		return nil, err
	}

	cmp := core.NewComparison()
	cmp.AddAnalysis(
		"Curves",
		analysis.NewRewardCurveAnalyzerConstructor(),
		analysis.NewCurveComparator(flags.SavePath, name+".json"),
	)
	for _, c := range configs {
		policy, err := c.Constructor()
		if err != nil {
			return nil, err
		}
		cmp.AddExperiment(&core.Experiment{
			Name:        c.Name(),
			Environment: envConstructor,
			Policy:      policy,
		})
	}
	return cmp, nil
}
