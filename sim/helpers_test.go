package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const gwei = GWEI_PER_ETH

// testConfig builds the 500k ETH reference config with the given probabilities.
func testConfig(t *testing.T, probabilityOnline, probabilityHonest float64) *Config {
	t.Helper()
	settings := DefaultSettings()
	settings.ProbabilityOnline = probabilityOnline
	settings.ProbabilityHonest = probabilityHonest
	settings.Seed = 1

	cfg, err := NewConfig(settings)
	require.NoError(t, err)
	return cfg
}

func fullValidator() Validator {
	return Validator{
		Balance:          32 * gwei,
		EffectiveBalance: 32 * gwei,
		IsActive:         true,
	}
}
