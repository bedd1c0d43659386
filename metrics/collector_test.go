package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/pk910/beacon_go_reward_simulator/sim"
)

func TestCollector_ObserveEpoch(t *testing.T) {
	require := require.New(t)
	c := NewCollector()

	row := sim.EpochReportRow{
		Deltas: sim.Deltas{
			HeadFFGReward:  100,
			HeadFFGPenalty: 7,
			ProposerReward: 20,
			AttesterReward: 30,
		},
		StakedBalance:       1_000,
		ActiveBalance:       900,
		MinBalance:          10,
		MaxBalance:          90,
		ActiveValidators:    12,
		AttestingValidators: 11,
	}
	c.ObserveEpoch(row)
	row.StakedBalance = 1_143
	c.ObserveEpoch(row)

	require.Equal(2.0, testutil.ToFloat64(c.epochs))
	require.Equal(200.0, testutil.ToFloat64(c.deltas.WithLabelValues("head_ffg_reward")))
	require.Equal(14.0, testutil.ToFloat64(c.deltas.WithLabelValues("head_ffg_penalty")))
	require.Equal(1_143.0, testutil.ToFloat64(c.stakedBalance))
	require.Equal(11.0, testutil.ToFloat64(c.attestingValidators))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector()
	c.ObserveEpoch(sim.EpochReportRow{ActiveValidators: 3})

	rec := httptest.NewRecorder()
	promhttp.HandlerFor(c.Registry(), promhttp.HandlerOpts{}).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	require.True(t, strings.Contains(body, "reward_sim_active_validators 3"), body)
	require.True(t, strings.Contains(body, "reward_sim_epochs_total 1"), body)
}

func TestConfig_Endpoint(t *testing.T) {
	require.Equal(t, "127.0.0.1:19090", DefaultConfig.Endpoint())
}
