package launcher

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pk910/beacon_go_reward_simulator/logger"
	"github.com/pk910/beacon_go_reward_simulator/report"
)

func runApp(t *testing.T, args ...string) (string, error) {
	logger.SetTestMode(t)

	var out bytes.Buffer
	app := NewApp()
	app.Writer = &out
	err := app.Run(append([]string{"beacon-reward-sim"}, args...))
	return out.String(), err
}

func TestRun_CSVFile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "rows.csv")
	out, err := runApp(t,
		"--epochs", "3",
		"--stake", "32768",
		"--seed", "7",
		"--workers", "2",
		"--log.level", "debug",
		"--out.csv", path,
	)
	require.NoError(err)
	require.Contains(out, "epochs:")
	require.Contains(out, "validators:                     1024")

	f, err := os.Open(path)
	require.NoError(err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(err)
	require.Len(records, 4)
	require.Equal(report.CSVHeader, records[0])
}

func TestRun_Stdout(t *testing.T) {
	require := require.New(t)

	out, err := runApp(t,
		"--epochs", "2",
		"--stake", "32768",
		"--seed", "7",
		"--out.csv", "-",
		"--out.table",
		"--out.summary=false",
	)
	require.NoError(err)

	records, err := csv.NewReader(bytes.NewBufferString(out)).Read()
	require.NoError(err)
	require.Equal(report.CSVHeader, records)
	require.NotContains(out, "annualized_yield")
}

func TestRun_InvalidConfig(t *testing.T) {
	_, err := runApp(t, "--p.online", "1.5")
	require.Error(t, err)

	_, err = runApp(t, "--epochs", "1", "--stake", "64")
	require.Error(t, err)
}

func TestDumpConfig_RoundTrip(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "dump.toml")
	_, err := runApp(t, "dumpconfig", "--epochs", "77", "--p.online", "0.5", "--out.table", path)
	require.NoError(err)

	cfg, err := makeConfigs(t, "--config", path)
	require.NoError(err)
	require.Equal(uint64(77), cfg.Simulation.Epochs)
	require.Equal(0.5, cfg.Simulation.ProbabilityOnline)
	require.True(cfg.Output.Table)
	require.Equal(defaultConfig().Metrics, cfg.Metrics)
}

func TestCheckConfig(t *testing.T) {
	_, err := runApp(t, "checkconfig", "--epochs", "5")
	require.NoError(t, err)

	_, err = runApp(t, "checkconfig", "--preset", "holesky")
	require.Error(t, err)

	_, err = runApp(t, "checkconfig", "--log.format", "xml")
	require.Error(t, err)
}
