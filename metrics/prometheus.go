package metrics

import (
	"math/big"
	"net/http"
	"sync"

	sdkmath "cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// FundPool Metrics Collector
// Provides metrics for monitoring the fund's round lifecycle

var (
	// Singleton collector
	collector     *Collector
	collectorOnce sync.Once
)

// Collector holds all fundpool metrics
type Collector struct {
	// Deposit metrics
	DepositsTotal prometheus.Counter
	DepositVolume prometheus.Counter

	// Payout metrics
	PayoutsTotal *prometheus.CounterVec
	PayoutVolume *prometheus.CounterVec

	// Round lifecycle metrics
	PhaseTransitionsTotal *prometheus.CounterVec
	RoundsCompleted       prometheus.Counter
	SweptVolume           prometheus.Counter

	// Fund state gauges
	InvestorCount prometheus.Gauge
	PoolBalance   prometheus.Gauge
	Multiplier    prometheus.Gauge
}

// GetCollector returns the singleton metrics collector
func GetCollector() *Collector {
	collectorOnce.Do(func() {
		collector = newCollector()
		collector.register()
	})
	return collector
}

func newCollector() *Collector {
	return &Collector{
		DepositsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fundpool_deposits_total",
			Help: "Total number of accepted investor deposits",
		}),
		DepositVolume: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fundpool_deposit_volume",
			Help: "Total deposited token volume",
		}),
		PayoutsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fundpool_payouts_total",
			Help: "Total number of investor payouts",
		}, []string{"kind"}),
		PayoutVolume: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fundpool_payout_volume",
			Help: "Total paid-out token volume",
		}, []string{"kind"}),
		PhaseTransitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fundpool_phase_transitions_total",
			Help: "Phase transitions by destination phase",
		}, []string{"to_phase"}),
		RoundsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fundpool_rounds_completed_total",
			Help: "Number of fully closed rounds",
		}),
		SweptVolume: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fundpool_swept_volume",
			Help: "Token volume swept to the remaining-funds address at round close",
		}),
		InvestorCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fundpool_investor_count",
			Help: "Investors currently present in the ledger",
		}),
		PoolBalance: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fundpool_pool_balance",
			Help: "Custodial pool balance at the last snapshot",
		}),
		Multiplier: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fundpool_multiplier",
			Help: "Current round multiplier as a ratio",
		}),
	}
}

func (c *Collector) register() {
	prometheus.MustRegister(c.DepositsTotal)
	prometheus.MustRegister(c.DepositVolume)
	prometheus.MustRegister(c.PayoutsTotal)
	prometheus.MustRegister(c.PayoutVolume)
	prometheus.MustRegister(c.PhaseTransitionsTotal)
	prometheus.MustRegister(c.RoundsCompleted)
	prometheus.MustRegister(c.SweptVolume)
	prometheus.MustRegister(c.InvestorCount)
	prometheus.MustRegister(c.PoolBalance)
	prometheus.MustRegister(c.Multiplier)
}

// ============ Recording Helpers ============

// RecordDeposit records an accepted deposit
func (c *Collector) RecordDeposit(volume float64) {
	c.DepositsTotal.Inc()
	c.DepositVolume.Add(volume)
}

// RecordPayout records an investor payout ("investor" or "forced")
func (c *Collector) RecordPayout(kind string, volume float64) {
	c.PayoutsTotal.WithLabelValues(kind).Inc()
	c.PayoutVolume.WithLabelValues(kind).Add(volume)
}

// RecordPhaseTransition records a phase transition
func (c *Collector) RecordPhaseTransition(toPhase string) {
	c.PhaseTransitionsTotal.WithLabelValues(toPhase).Inc()
}

// RecordRoundClosed records a round closure and the swept remainder
func (c *Collector) RecordRoundClosed(swept float64) {
	c.RoundsCompleted.Inc()
	c.SweptVolume.Add(swept)
}

// SetInvestorCount updates the ledger size gauge
func (c *Collector) SetInvestorCount(n int) {
	c.InvestorCount.Set(float64(n))
}

// SetPoolBalance updates the custodial balance gauge
func (c *Collector) SetPoolBalance(balance float64) {
	c.PoolBalance.Set(balance)
}

// SetMultiplier updates the multiplier gauge
func (c *Collector) SetMultiplier(ratio float64) {
	c.Multiplier.Set(ratio)
}

// AmountFloat converts a token amount to a float64 for gauge/counter use.
// Lossy above 2^53; metrics are advisory, not part of the accounting.
func AmountFloat(amount sdkmath.Int) float64 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}

// ============ HTTP Handler ============

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
