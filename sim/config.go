package sim

import (
	"math"

	"github.com/pkg/errors"
	"github.com/protolambda/zrnt/eth2/beacon/common"
)

const GWEI_PER_ETH = 1_000_000_000

// Settings are the user facing simulation parameters, as loaded from config
// files and command line flags.
type Settings struct {
	Epochs uint64 `yaml:"epochs"`
	// Initial stake in Gwei, split into max effective balance validators.
	TotalAtStakeInitial uint64  `yaml:"total_at_stake_initial"`
	ProbabilityOnline   float64 `yaml:"probability_online"`
	ProbabilityHonest   float64 `yaml:"probability_honest"`

	// Seed for the random source. Zero picks one from the clock.
	Seed    int64  `yaml:"seed"`
	Preset  string `yaml:"preset"`
	Workers int    `yaml:"workers"`

	// Share of genesis validators created slashed / inactive.
	SlashedPercent  uint64 `yaml:"slashed_percent"`
	InactivePercent uint64 `yaml:"inactive_percent"`

	// Log progress every LogInterval epochs.
	LogInterval uint64 `yaml:"log_interval"`
}

// DefaultSettings returns the reference scenario: 500k ETH, 10 epochs, 99% online.
func DefaultSettings() Settings {
	return Settings{
		Epochs:              10,
		TotalAtStakeInitial: 500_000 * GWEI_PER_ETH,
		ProbabilityOnline:   0.99,
		ProbabilityHonest:   1.0,
		Preset:              PRESET_MAINNET,
		Workers:             1,
		LogInterval:         DEFAULT_LOG_INTERVAL,
	}
}

// Config is the validated parameter set of one simulation run. It is never
// modified after NewConfig returns.
type Config struct {
	Settings
	Params Params

	// Expected inclusion reward factor, p*ln(p)/(p-1) for p = ProbabilityOnline.
	ExpValueInclusionProb float64
}

// NewConfig validates settings and derives the constants of the run.
func NewConfig(s Settings) (*Config, error) {
	if s.Epochs == 0 {
		return nil, errors.Wrap(ErrInvalidConfig, "epochs must be positive")
	}
	if err := checkProbability("probability_online", s.ProbabilityOnline); err != nil {
		return nil, err
	}
	if err := checkProbability("probability_honest", s.ProbabilityHonest); err != nil {
		return nil, err
	}
	spec := PresetSpec(s.Preset)
	if spec == nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "unknown preset %q", s.Preset)
	}
	params := ParamsFromSpec(spec)
	if common.Gwei(s.TotalAtStakeInitial) < params.MaxEffectiveBalance {
		return nil, errors.Wrapf(ErrInvalidConfig, "initial stake %d below one validator (%d)",
			s.TotalAtStakeInitial, params.MaxEffectiveBalance)
	}
	if s.SlashedPercent > 100 || s.InactivePercent > 100 || s.SlashedPercent+s.InactivePercent > 100 {
		return nil, errors.Wrapf(ErrInvalidConfig, "slashed %d%% + inactive %d%% exceeds 100%%",
			s.SlashedPercent, s.InactivePercent)
	}
	if s.Workers < 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "negative worker count %d", s.Workers)
	}
	if s.Workers == 0 {
		s.Workers = 1
	}
	if s.LogInterval == 0 {
		s.LogInterval = DEFAULT_LOG_INTERVAL
	}

	return &Config{
		Settings:              s,
		Params:                params,
		ExpValueInclusionProb: ExpValueInclusionProb(s.ProbabilityOnline),
	}, nil
}

func checkProbability(name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return errors.Wrapf(ErrInvalidConfig, "%s %v outside [0,1]", name, p)
	}
	return nil
}

// ExpValueInclusionProb computes p*ln(p)/(p-1). The expression is 0/0 at p=1
// and 0*-inf at p=0, both replaced by their limits.
func ExpValueInclusionProb(p float64) float64 {
	switch p {
	case 1:
		return 1
	case 0:
		return 0
	}
	return p * math.Log(p) / (p - 1)
}
