package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wagerbot/models"
)

var (
	WagersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wagerbot_wagers_total",
			Help: "Total number of resolved wager commands",
		},
		[]string{"game", "result"},
	)

	WagerRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wagerbot_wager_rejections_total",
			Help: "Total number of wager commands rejected before resolution",
		},
		[]string{"game", "code"},
	)

	AmountWageredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wagerbot_amount_wagered_total",
			Help: "Sum of stakes placed",
		},
		[]string{"game"},
	)

	AmountPaidOutTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wagerbot_amount_paid_out_total",
			Help: "Sum of gross winnings and beg grants, excluding refunded ties",
		},
		[]string{"game"},
	)

	EffectsFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wagerbot_effects_fallback_total",
			Help: "Times the effects lookup failed and the neutral multiplier was used",
		},
	)

	WagerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wagerbot_wager_duration_seconds",
			Help:    "Time from validation to commit for a wager command",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"game"},
	)
)

// RecordWager records a committed outcome
func RecordWager(outcome *models.WagerOutcome, elapsed time.Duration) {
	game := string(outcome.Game)
	WagersTotal.WithLabelValues(game, string(outcome.Result)).Inc()
	if outcome.Bet > 0 {
		AmountWageredTotal.WithLabelValues(game).Add(float64(outcome.Bet))
	}
	// A tie refunds the stake; only wins pay out
	if outcome.Result == models.ResultWin && outcome.GrossWinnings > 0 {
		AmountPaidOutTotal.WithLabelValues(game).Add(float64(outcome.GrossWinnings))
	}
	WagerDuration.WithLabelValues(game).Observe(elapsed.Seconds())
}

// RecordRejection records a wager that stopped before resolution
func RecordRejection(game models.GameType, code string) {
	WagerRejectionsTotal.WithLabelValues(string(game), code).Inc()
}

// NewServer returns an HTTP server exposing /metrics on addr
func NewServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
