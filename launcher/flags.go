package launcher

import (
	"gopkg.in/urfave/cli.v1"

	"github.com/pk910/beacon_go_reward_simulator/logger"
	"github.com/pk910/beacon_go_reward_simulator/metrics"
	"github.com/pk910/beacon_go_reward_simulator/sim"
)

var (
	ConfigFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML (or .yaml) configuration file",
	}

	EpochsFlag = cli.Uint64Flag{
		Name:  "epochs",
		Usage: "Number of epochs to simulate",
		Value: sim.DefaultSettings().Epochs,
	}
	StakeFlag = cli.Uint64Flag{
		Name:  "stake",
		Usage: "Initial total stake in ETH, split into 32 ETH validators",
		Value: sim.DefaultSettings().TotalAtStakeInitial / sim.GWEI_PER_ETH,
	}
	ProbabilityOnlineFlag = cli.Float64Flag{
		Name:  "p.online",
		Usage: "Probability a validator is online during an epoch",
		Value: sim.DefaultSettings().ProbabilityOnline,
	}
	ProbabilityHonestFlag = cli.Float64Flag{
		Name:  "p.honest",
		Usage: "Probability a validator votes honestly during an epoch",
		Value: sim.DefaultSettings().ProbabilityHonest,
	}
	SeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "Random seed (0 = derive from clock)",
	}
	PresetFlag = cli.StringFlag{
		Name:  "preset",
		Usage: `Beacon chain preset ("mainnet" or "minimal")`,
		Value: sim.PRESET_MAINNET,
	}
	WorkersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "Goroutines sharing the per-validator pass",
		Value: 1,
	}
	SlashedFlag = cli.Uint64Flag{
		Name:  "slashed",
		Usage: "Percentage of genesis validators that start slashed",
	}
	InactiveFlag = cli.Uint64Flag{
		Name:  "inactive",
		Usage: "Percentage of genesis validators that start inactive",
	}
	LogIntervalFlag = cli.Uint64Flag{
		Name:  "log.interval",
		Usage: "Log progress every N epochs",
		Value: sim.DEFAULT_LOG_INTERVAL,
	}

	CSVFlag = cli.StringFlag{
		Name:  "out.csv",
		Usage: `Write per-epoch rows as CSV to this file ("-" for stdout)`,
	}
	TableFlag = cli.BoolFlag{
		Name:  "out.table",
		Usage: "Print per-epoch rows as a table",
	}
	SummaryFlag = cli.BoolTFlag{
		Name:  "out.summary",
		Usage: "Print the run summary (default true)",
	}

	LogLevelFlag = cli.StringFlag{
		Name:  "log.level",
		Usage: "Log level (panic|fatal|error|warn|info|debug|trace)",
		Value: logger.DefaultConfig.Level,
	}
	LogFormatFlag = cli.StringFlag{
		Name:  "log.format",
		Usage: "Log output format (text|json)",
		Value: logger.DefaultConfig.Format,
	}

	MetricsEnabledFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "Serve Prometheus metrics while the simulation runs",
	}
	MetricsAddrFlag = cli.StringFlag{
		Name:  "metrics.addr",
		Usage: "Metrics server listening interface",
		Value: metrics.DefaultConfig.HTTP,
	}
	MetricsPortFlag = cli.IntFlag{
		Name:  "metrics.port",
		Usage: "Metrics server listening port",
		Value: metrics.DefaultConfig.Port,
	}
)

// Flags returns every flag understood by the simulator commands.
func Flags() []cli.Flag {
	return []cli.Flag{
		ConfigFileFlag,
		EpochsFlag,
		StakeFlag,
		ProbabilityOnlineFlag,
		ProbabilityHonestFlag,
		SeedFlag,
		PresetFlag,
		WorkersFlag,
		SlashedFlag,
		InactiveFlag,
		LogIntervalFlag,
		CSVFlag,
		TableFlag,
		SummaryFlag,
		LogLevelFlag,
		LogFormatFlag,
		MetricsEnabledFlag,
		MetricsAddrFlag,
		MetricsPortFlag,
	}
}
