package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// EventType classifies a pipeline progress event.
type EventType string

const (
	EventStageStarted         EventType = "stage_started"
	EventStageCompleted       EventType = "stage_completed"
	EventStageFailed          EventType = "stage_failed"
	EventStageSkipped         EventType = "stage_skipped"
	EventExpectationGenerated EventType = "expectation_generated"
	EventInteractivePause     EventType = "interactive_pause"
	EventPipelineCompleted    EventType = "pipeline_completed"
)

// Event is one pipeline progress notification.
type Event struct {
	Type        EventType     `json:"type"`
	ProjectID   string        `json:"project_id"`
	Stage       Stage         `json:"stage,omitempty"`
	Duration    time.Duration `json:"duration,omitempty"`
	Error       string        `json:"error,omitempty"`
	Expectation *Expectation  `json:"expectation,omitempty"`
	Summary     string        `json:"summary,omitempty"`
	Timestamp   time.Time     `json:"timestamp"`
}

// Publisher delivers pipeline events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// DefaultEventSubjectPrefix is the subject root for pipeline events.
const DefaultEventSubjectPrefix = "pipeline.event"

// NATSPublisher publishes events as JSON on NATS subjects of the form
// <prefix>.<stage>, or <prefix>.<type> for run-level events. A nil
// connection disables publishing rather than erroring, so event delivery
// degrades gracefully when no broker is configured.
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
	logger *slog.Logger
}

// NATSOption configures a NATSPublisher.
type NATSOption func(*NATSPublisher)

// WithSubjectPrefix overrides the event subject root.
func WithSubjectPrefix(prefix string) NATSOption {
	return func(p *NATSPublisher) {
		if prefix != "" {
			p.prefix = prefix
		}
	}
}

// WithPublisherLogger sets the publisher's logger.
func WithPublisherLogger(logger *slog.Logger) NATSOption {
	return func(p *NATSPublisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewNATSPublisher wraps a NATS connection. conn may be nil.
func NewNATSPublisher(conn *nats.Conn, opts ...NATSOption) *NATSPublisher {
	p := &NATSPublisher{
		conn:   conn,
		prefix: DefaultEventSubjectPrefix,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish sends the event. Skipped silently without a connection.
func (p *NATSPublisher) Publish(_ context.Context, ev Event) error {
	if p == nil || p.conn == nil {
		return nil
	}

	subject := p.prefix + "." + string(ev.Type)
	if ev.Stage != "" {
		subject = p.prefix + "." + string(ev.Stage)
	}

	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal pipeline event: %w", err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish pipeline event: %w", err)
	}
	p.logger.Debug("pipeline event published", "subject", subject, "type", ev.Type)
	return nil
}
