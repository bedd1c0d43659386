package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pk910/beacon_go_reward_simulator/sim"
)

const namespace = "reward_sim"

// Collector mirrors the latest report row into prometheus metrics.
type Collector struct {
	registry *prometheus.Registry

	epochs              prometheus.Counter
	deltas              *prometheus.CounterVec
	stakedBalance       prometheus.Gauge
	activeBalance       prometheus.Gauge
	minBalance          prometheus.Gauge
	maxBalance          prometheus.Gauge
	activeValidators    prometheus.Gauge
	attestingValidators prometheus.Gauge
}

func NewCollector() *Collector {
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
	}

	c := &Collector{
		registry: prometheus.NewRegistry(),
		epochs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "epochs_total",
			Help:      "Epoch transitions processed.",
		}),
		deltas: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deltas_gwei_total",
			Help:      "Rewards and penalties booked, by kind.",
		}, []string{"kind"}),
		stakedBalance:       gauge("staked_balance_gwei", "Sum of all balances after the last epoch."),
		activeBalance:       gauge("active_balance_gwei", "Sum of active effective balances after the last epoch."),
		minBalance:          gauge("min_balance_gwei", "Lowest validator balance after the last epoch."),
		maxBalance:          gauge("max_balance_gwei", "Highest validator balance after the last epoch."),
		activeValidators:    gauge("active_validators", "Active validators after the last epoch."),
		attestingValidators: gauge("attesting_validators", "Validators that matched source in the last epoch."),
	}
	c.registry.MustRegister(
		c.epochs,
		c.deltas,
		c.stakedBalance,
		c.activeBalance,
		c.minBalance,
		c.maxBalance,
		c.activeValidators,
		c.attestingValidators,
	)
	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveEpoch implements sim.Observer.
func (c *Collector) ObserveEpoch(row sim.EpochReportRow) {
	c.epochs.Inc()
	c.deltas.WithLabelValues("head_ffg_reward").Add(float64(row.HeadFFGReward))
	c.deltas.WithLabelValues("head_ffg_penalty").Add(float64(row.HeadFFGPenalty))
	c.deltas.WithLabelValues("proposer_reward").Add(float64(row.ProposerReward))
	c.deltas.WithLabelValues("attester_reward").Add(float64(row.AttesterReward))

	c.stakedBalance.Set(float64(row.StakedBalance))
	c.activeBalance.Set(float64(row.ActiveBalance))
	c.minBalance.Set(float64(row.MinBalance))
	c.maxBalance.Set(float64(row.MaxBalance))
	c.activeValidators.Set(float64(row.ActiveValidators))
	c.attestingValidators.Set(float64(row.AttestingValidators))
}
