package launcher

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/pk910/beacon_go_reward_simulator/logger"
	"github.com/pk910/beacon_go_reward_simulator/metrics"
	"github.com/pk910/beacon_go_reward_simulator/report"
	"github.com/pk910/beacon_go_reward_simulator/sim"
)

var log = logger.New("launcher")

var (
	dumpConfigCommand = cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "[file]",
		Flags:       Flags(),
		Category:    "MISCELLANEOUS COMMANDS",
		Description: `The dumpconfig command shows configuration values in TOML form.`,
	}
	checkConfigCommand = cli.Command{
		Action:      checkConfig,
		Name:        "checkconfig",
		Usage:       "Checks configuration file",
		ArgsUsage:   "",
		Flags:       Flags(),
		Category:    "MISCELLANEOUS COMMANDS",
		Description: `The checkconfig command validates the merged configuration.`,
	}
)

// NewApp builds the command line application.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "beacon-reward-sim"
	app.Usage = "Monte Carlo simulation of phase0 validator rewards"
	app.HideVersion = true
	app.Flags = Flags()
	app.Action = run
	app.Commands = []cli.Command{
		dumpConfigCommand,
		checkConfigCommand,
	}
	return app
}

// Launch runs the application with the given arguments.
func Launch(args []string) error {
	return NewApp().Run(args)
}

func run(ctx *cli.Context) error {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return err
	}
	if err := logger.Setup(cfg.Logging); err != nil {
		return err
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = time.Now().UnixNano()
		log.Log.WithField("seed", cfg.Simulation.Seed).Info("Seeded from clock")
	}

	simCfg, err := sim.NewConfig(cfg.Simulation)
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()
	if cfg.Metrics.Enabled {
		server := metrics.Listen(cfg.Metrics, collector)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Close(shutdownCtx); err != nil {
				log.Log.WithError(err).Warn("Metrics server shutdown")
			}
		}()
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	simulator := sim.NewSimulator(simCfg, sim.NewRand(simCfg.Seed), sim.WithObserver(collector))
	genesis := sim.NewGenesisState(simCfg)

	log.Log.WithFields(logrus.Fields{
		"preset":     simCfg.Preset,
		"validators": len(genesis.Validators),
		"epochs":     simCfg.Epochs,
		"p_online":   simCfg.ProbabilityOnline,
		"p_honest":   simCfg.ProbabilityHonest,
		"workers":    simCfg.Workers,
	}).Info("Simulation starts")

	start := time.Now()
	final, rows, err := simulator.Run(runCtx, genesis)
	if err != nil {
		return errors.Wrap(err, "simulation")
	}
	log.Log.WithField("elapsed", time.Since(start)).Info("Simulation finished")

	return writeOutputs(ctx.App.Writer, cfg.Output, simCfg, genesis, final, rows)
}

func writeOutputs(w io.Writer, out OutputConfig, cfg *sim.Config, genesis, final *sim.State, rows []sim.EpochReportRow) error {
	if out.CSV != "" {
		if err := writeCSVFile(w, out.CSV, rows); err != nil {
			return err
		}
	}
	if out.Table {
		report.RenderTable(w, rows)
	}
	if out.Summary {
		report.PrintSummary(w, report.Summarize(cfg, genesis, final, rows))
	}
	return nil
}

func writeCSVFile(stdout io.Writer, path string, rows []sim.EpochReportRow) error {
	if path == "-" {
		return report.WriteCSV(stdout, rows)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create csv")
	}
	if err := report.WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return err
	}

	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}

	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	_, err = dump.Write(out)
	return err
}

func checkConfig(ctx *cli.Context) error {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return err
	}
	if _, err := sim.NewConfig(cfg.Simulation); err != nil {
		return err
	}
	if err := logger.Setup(cfg.Logging); err != nil {
		return err
	}
	log.Log.Info("Configuration is valid")
	return nil
}
