package launcher

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/naoina/toml"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/pk910/beacon_go_reward_simulator/logger"
	"github.com/pk910/beacon_go_reward_simulator/metrics"
	"github.com/pk910/beacon_go_reward_simulator/sim"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// OutputConfig selects the reports emitted after a run.
type OutputConfig struct {
	// CSV file path, "-" for stdout, empty for none.
	CSV     string `yaml:"csv"`
	Table   bool   `yaml:"table"`
	Summary bool   `yaml:"summary"`
}

// Config aggregates everything the launcher needs.
type Config struct {
	Simulation sim.Settings   `yaml:"simulation"`
	Output     OutputConfig   `yaml:"output"`
	Logging    logger.Config  `yaml:"logging"`
	Metrics    metrics.Config `yaml:"metrics"`
}

func defaultConfig() Config {
	return Config{
		Simulation: sim.DefaultSettings(),
		Output: OutputConfig{
			Summary: true,
		},
		Logging: logger.DefaultConfig,
		Metrics: metrics.DefaultConfig,
	}
}

// MakeAllConfigs merges defaults, the optional config file and command line overrides.
func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	if file := ctx.String(ConfigFileFlag.Name); file != "" {
		if err := loadAllConfigs(file, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := applyCLIOverrides(ctx, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadAllConfigs(file string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return loadYAMLConfig(file, cfg)
	}

	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	if err != nil {
		return errors.Errorf("TOML config file error: %v.\n"+
			"Use 'dumpconfig' command to get an example config file.", err)
	}
	return nil
}

func loadYAMLConfig(file string, cfg *Config) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "parse config %s", file)
	}
	return nil
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) error {
	s := &cfg.Simulation
	if ctx.IsSet(EpochsFlag.Name) {
		s.Epochs = ctx.Uint64(EpochsFlag.Name)
	}
	if ctx.IsSet(StakeFlag.Name) {
		stake := ctx.Uint64(StakeFlag.Name)
		if stake > math.MaxUint64/sim.GWEI_PER_ETH {
			return errors.Wrapf(sim.ErrInvalidConfig, "stake %d ETH does not fit in Gwei", stake)
		}
		s.TotalAtStakeInitial = stake * sim.GWEI_PER_ETH
	}
	if ctx.IsSet(ProbabilityOnlineFlag.Name) {
		s.ProbabilityOnline = ctx.Float64(ProbabilityOnlineFlag.Name)
	}
	if ctx.IsSet(ProbabilityHonestFlag.Name) {
		s.ProbabilityHonest = ctx.Float64(ProbabilityHonestFlag.Name)
	}
	if ctx.IsSet(SeedFlag.Name) {
		s.Seed = ctx.Int64(SeedFlag.Name)
	}
	if ctx.IsSet(PresetFlag.Name) {
		s.Preset = ctx.String(PresetFlag.Name)
	}
	if ctx.IsSet(WorkersFlag.Name) {
		s.Workers = ctx.Int(WorkersFlag.Name)
	}
	if ctx.IsSet(SlashedFlag.Name) {
		s.SlashedPercent = ctx.Uint64(SlashedFlag.Name)
	}
	if ctx.IsSet(InactiveFlag.Name) {
		s.InactivePercent = ctx.Uint64(InactiveFlag.Name)
	}
	if ctx.IsSet(LogIntervalFlag.Name) {
		s.LogInterval = ctx.Uint64(LogIntervalFlag.Name)
	}

	if ctx.IsSet(CSVFlag.Name) {
		cfg.Output.CSV = ctx.String(CSVFlag.Name)
	}
	if ctx.IsSet(TableFlag.Name) {
		cfg.Output.Table = ctx.Bool(TableFlag.Name)
	}
	if ctx.IsSet(SummaryFlag.Name) {
		cfg.Output.Summary = ctx.BoolT(SummaryFlag.Name)
	}

	if ctx.IsSet(LogLevelFlag.Name) {
		cfg.Logging.Level = ctx.String(LogLevelFlag.Name)
	}
	if ctx.IsSet(LogFormatFlag.Name) {
		cfg.Logging.Format = ctx.String(LogFormatFlag.Name)
	}

	if ctx.IsSet(MetricsEnabledFlag.Name) {
		cfg.Metrics.Enabled = ctx.Bool(MetricsEnabledFlag.Name)
	}
	if ctx.IsSet(MetricsAddrFlag.Name) {
		cfg.Metrics.HTTP = ctx.String(MetricsAddrFlag.Name)
	}
	if ctx.IsSet(MetricsPortFlag.Name) {
		cfg.Metrics.Port = ctx.Int(MetricsPortFlag.Name)
	}
	return nil
}
