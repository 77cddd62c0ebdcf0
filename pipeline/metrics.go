package pipeline

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments pipeline runs. A nil *Metrics is a no-op, so
// instrumentation stays optional.
type Metrics struct {
	stageDuration      *prometheus.HistogramVec
	stagesCompleted    *prometheus.CounterVec
	stagesFailed       *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	pipelinesCompleted prometheus.Counter
	pagesGenerated     prometheus.Counter
}

// NewMetrics registers the pipeline collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		stageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sitegen",
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Wall time spent executing each pipeline stage.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 10),
		}, []string{"stage"}),
		stagesCompleted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sitegen",
			Subsystem: "pipeline",
			Name:      "stages_completed_total",
			Help:      "Stages that completed successfully.",
		}, []string{"stage"}),
		stagesFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sitegen",
			Subsystem: "pipeline",
			Name:      "stages_failed_total",
			Help:      "Stages that failed during execution.",
		}, []string{"stage"}),
		validationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sitegen",
			Subsystem: "pipeline",
			Name:      "validation_failures_total",
			Help:      "Stage outputs rejected by structural validation.",
		}, []string{"stage"}),
		pipelinesCompleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "sitegen",
			Subsystem: "pipeline",
			Name:      "runs_completed_total",
			Help:      "Pipeline runs that reached the terminal stage.",
		}),
		pagesGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "sitegen",
			Subsystem: "pipeline",
			Name:      "pages_generated_total",
			Help:      "Location landing pages produced by the seo stage.",
		}),
	}
}

// ObserveStage records a successful stage execution.
func (m *Metrics) ObserveStage(stage Stage, d time.Duration) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(string(stage)).Observe(d.Seconds())
	m.stagesCompleted.WithLabelValues(string(stage)).Inc()
}

// StageFailed counts a handler failure.
func (m *Metrics) StageFailed(stage Stage) {
	if m == nil {
		return
	}
	m.stagesFailed.WithLabelValues(string(stage)).Inc()
}

// ValidationFailure counts a rejected stage output.
func (m *Metrics) ValidationFailure(stage Stage) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(string(stage)).Inc()
}

// PipelineCompleted counts a run reaching the terminal stage.
func (m *Metrics) PipelineCompleted() {
	if m == nil {
		return
	}
	m.pipelinesCompleted.Inc()
}

// AddPagesGenerated counts pages emitted by a generated plan.
func (m *Metrics) AddPagesGenerated(n int) {
	if m == nil {
		return
	}
	m.pagesGenerated.Add(float64(n))
}
