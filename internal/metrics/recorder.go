package metrics

import (
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/AngelCh415/ROI_GO/internal/models"
)

// Outcome labels for degenerate but valid results.
const (
	OutcomeROIInfinite      = "roi_infinite"
	OutcomePaybackNever     = "payback_never"
	OutcomePaybackImmediate = "payback_immediate"
	OutcomeNetLoss          = "net_loss"
)

type Recorder struct {
	computations prometheus.Counter
	duration     prometheus.Histogram
	outcomes     *prometheus.CounterVec
	rejected     prometheus.Counter
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		computations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roi_computations_total",
			Help: "Completed ROI computations.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "roi_compute_duration_seconds",
			Help:    "Time spent deriving results and building the report.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roi_degenerate_outcomes_total",
			Help: "Results that carry a sentinel or a net loss.",
		}, []string{"outcome"}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roi_validation_failures_total",
			Help: "Input snapshots rejected before computing.",
		}),
	}
	reg.MustRegister(r.computations, r.duration, r.outcomes, r.rejected)
	return r
}

// Observe records one finished computation.
func (r *Recorder) Observe(res models.Results, took time.Duration) {
	r.computations.Inc()
	r.duration.Observe(took.Seconds())

	if math.IsInf(res.MonthlyROI, 1) {
		r.outcomes.WithLabelValues(OutcomeROIInfinite).Inc()
	}
	switch {
	case math.IsInf(res.PaybackPeriod, 1):
		r.outcomes.WithLabelValues(OutcomePaybackNever).Inc()
	case res.PaybackPeriod == 0:
		r.outcomes.WithLabelValues(OutcomePaybackImmediate).Inc()
	}
	if res.TotalMonthlyGain < 0 {
		r.outcomes.WithLabelValues(OutcomeNetLoss).Inc()
	}
}

// Rejected counts a snapshot that failed validation.
func (r *Recorder) Rejected() { r.rejected.Inc() }
