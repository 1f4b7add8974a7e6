package common

import (
	"path"
	"time"

	"github.com/go-kit/log"
	"github.com/zeu5/bandit-testing/core"
	"github.com/zeu5/bandit-testing/environments"
	"github.com/zeu5/bandit-testing/util"
)

type Flags struct {
	NumActions  int               `json:"num_actions" yaml:"num_actions"`
	Environment environments.Kind `json:"environment" yaml:"environment"`
	SavePath    string            `json:"save_path" yaml:"save_path"`
	RunFlags    `yaml:",inline"`
	Parallelism int  `json:"parallelism" yaml:"parallelism"`
	Progress    bool `json:"progress" yaml:"progress"`
}

type RunFlags struct {
	Repetitions     int           `json:"repetitions" yaml:"repetitions"`
	Horizon         int           `json:"horizon" yaml:"horizon"`
	Seed            uint64        `json:"seed" yaml:"seed"`
	ProgressRefresh time.Duration `json:"progress_refresh" yaml:"progress_refresh"`
}

func DefaultFlags() *Flags {
	return &Flags{
		NumActions:  10,
		Environment: environments.Bernoulli,
		SavePath:    "results",
		RunFlags: RunFlags{
			Repetitions:     500,
			Horizon:         1000,
			Seed:            0,
			ProgressRefresh: 500 * time.Millisecond,
		},
		Parallelism: 1,
		Progress:    false,
	}
}

// LoadFlags reads the YAML file at path on top of the defaults
func LoadFlags(path string) (*Flags, error) {
	flags := DefaultFlags()
	if err := util.LoadYaml(path, flags); err != nil {
		return nil, err
	}
	if err := flags.Validate(); err != nil {
		return nil, err
	}
	return flags, nil
}

func (f *Flags) Validate() error {
	if err := f.EnvironmentConfig().Validate(); err != nil {
		return err
	}
	if f.Repetitions < 1 {
		return core.ConfigurationError("repetitions must be at least 1, got %d", f.Repetitions)
	}
	if f.Horizon < 1 {
		return core.ConfigurationError("horizon must be at least 1, got %d", f.Horizon)
	}
	return nil
}

func (f *Flags) EnvironmentConfig() *environments.Config {
	return &environments.Config{
		Kind:       f.Environment,
		NumActions: f.NumActions,
	}
}

// RunConfig returns the run configuration described by the flags. A nil
// logger disables structured logs.
func (f *Flags) RunConfig(logger log.Logger) *core.RunConfig {
	return &core.RunConfig{
		Repetitions:     f.Repetitions,
		Horizon:         f.Horizon,
		Parallelism:     f.Parallelism,
		Seed:            f.Seed,
		Logger:          logger,
		Progress:        f.Progress,
		ProgressRefresh: f.ProgressRefresh,
	}
}

func (f *Flags) Record() error {
	return util.SaveJson(path.Join(f.SavePath, "config.json"), f)
}
