package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
)

// ErrDone is returned by Advance once the terminal stage has completed.
var ErrDone = errors.New("pipeline: run already complete")

// ValidationFailedError reports a stage output that failed structural
// validation. The runner halts at the failing stage without advancing.
type ValidationFailedError struct {
	Stage  Stage
	Errors []ValidationError
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("stage %s output failed validation (%d errors)", e.Stage, len(e.Errors))
}

// Handler executes one stage against the current run state and returns
// the stage's typed output record.
type Handler func(ctx context.Context, st *State) (any, error)

// StageResult records one stage execution within a run.
type StageResult struct {
	Stage       Stage             `json:"stage"`
	Status      Status            `json:"status"`
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt time.Time         `json:"completed_at"`
	Duration    time.Duration     `json:"duration,omitempty"`
	Output      any               `json:"output,omitempty"`
	Expectation *Expectation      `json:"expectation,omitempty"`
	Errors      []ValidationError `json:"errors,omitempty"`
	Err         string            `json:"error,omitempty"`
}

// Progress summarizes how far a run has come.
type Progress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// State is the full run state of one project's pipeline. A State belongs
// to exactly one Runner and must not be mutated by callers.
type State struct {
	ProjectID string                 `json:"project_id"`
	Current   Stage                  `json:"current_stage"`
	StartedAt time.Time              `json:"started_at"`
	UpdatedAt time.Time              `json:"updated_at"`
	Results   map[Stage]*StageResult `json:"stages"`
	Progress  Progress               `json:"progress"`
}

// Output returns the completed output of a stage, or nil if the stage has
// not produced one.
func (s *State) Output(stage Stage) any {
	if r, ok := s.Results[stage]; ok && r.Status == StatusCompleted {
		return r.Output
	}
	return nil
}

// Done reports whether the terminal stage completed or was skipped.
func (s *State) Done() bool {
	r, ok := s.Results[StagePublish]
	return ok && (r.Status == StatusCompleted || r.Status == StatusSkipped)
}

// Runner drives one project's stages in fixed order. Stages run strictly
// sequentially; independent runners share only immutable reference data
// and may execute concurrently. A Runner is not safe for concurrent use.
type Runner struct {
	state       *State
	handlers    map[Stage]Handler
	store       Store
	publisher   Publisher
	metrics     *Metrics
	interactive bool
	logger      *slog.Logger
	now         func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithStore persists every stage result keyed by (project, stage).
func WithStore(s Store) Option {
	return func(r *Runner) { r.store = s }
}

// WithPublisher emits progress events for every transition.
func WithPublisher(p Publisher) Option {
	return func(r *Runner) { r.publisher = p }
}

// WithMetrics records stage durations and outcome counters.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithInteractive makes Run pause before every interactive stage and hand
// control back to the caller, who proceeds with Advance.
func WithInteractive() Option {
	return func(r *Runner) { r.interactive = true }
}

// WithLogger sets the runner's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner initializes a fresh run for a project at the input stage.
func NewRunner(projectID string, opts ...Option) *Runner {
	r := &Runner{
		handlers: make(map[Stage]Handler),
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	now := r.now()
	results := make(map[Stage]*StageResult, len(stageOrder))
	for _, stage := range stageOrder {
		results[stage] = &StageResult{Stage: stage, Status: StatusPending}
	}
	r.state = &State{
		ProjectID: projectID,
		Current:   StageInput,
		StartedAt: now,
		UpdatedAt: now,
		Results:   results,
		Progress:  Progress{Total: len(stageOrder)},
	}
	return r
}

// Register installs the handler for a stage, replacing any previous one.
func (r *Runner) Register(stage Stage, h Handler) {
	r.handlers[stage] = h
}

// State returns the live run state.
func (r *Runner) State() *State { return r.state }

// Advance executes exactly the current stage and returns its result. On
// validation failure the current stage does not move and the result
// carries the field-level errors. This is the synchronization point for
// manual mode: the caller inspects the returned expectation and decides
// whether to call Advance again.
func (r *Runner) Advance(ctx context.Context) (*StageResult, error) {
	if r.state.Done() {
		return nil, ErrDone
	}
	stage := r.state.Current

	result, err := r.execute(ctx, stage)
	if err != nil {
		return result, err
	}

	if next := stage.Next(); next != "" {
		r.state.Current = next
	}
	if r.state.Done() {
		r.emit(ctx, Event{
			Type:     EventPipelineCompleted,
			Duration: r.now().Sub(r.state.StartedAt),
		})
		r.metrics.PipelineCompleted()
	}
	return result, nil
}

// Run executes stages until the run is complete or a stage fails. In
// interactive mode it stops before each interactive stage, emits a pause
// event and returns nil; the caller resumes with Advance.
func (r *Runner) Run(ctx context.Context) error {
	for !r.state.Done() {
		stage := r.state.Current
		if r.interactive && StageInfo(stage).Interactive &&
			r.state.Results[stage].Status == StatusPending {
			r.emit(ctx, Event{Type: EventInteractivePause, Stage: stage})
			return nil
		}
		if _, err := r.Advance(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Skip marks a stage skipped without running it. Only stages whose
// metadata allows skipping can be skipped.
func (r *Runner) Skip(stage Stage) error {
	if !stage.IsValid() {
		return fmt.Errorf("skip: unknown stage %q", stage)
	}
	if !StageInfo(stage).CanSkip {
		return fmt.Errorf("skip: stage %s cannot be skipped", stage)
	}

	result := r.state.Results[stage]
	result.Status = StatusSkipped
	result.CompletedAt = r.now()
	if r.state.Current == stage {
		if next := stage.Next(); next != "" {
			r.state.Current = next
		}
	}
	r.updateProgress()
	r.emit(context.Background(), Event{Type: EventStageSkipped, Stage: stage})
	return nil
}

// Rerun executes a stage that has already been reached as a fresh run of
// that stage. The current stage pointer only moves forward.
func (r *Runner) Rerun(ctx context.Context, stage Stage) (*StageResult, error) {
	if !stage.IsValid() {
		return nil, fmt.Errorf("rerun: unknown stage %q", stage)
	}
	if !StageInfo(stage).CanRetry {
		return nil, fmt.Errorf("rerun: stage %s cannot be retried", stage)
	}
	if stage.Index() > r.state.Current.Index() {
		return nil, fmt.Errorf("rerun: stage %s has not been reached", stage)
	}

	r.state.Results[stage] = &StageResult{Stage: stage, Status: StatusPending}
	result, err := r.execute(ctx, stage)
	if err != nil {
		return result, err
	}
	if stage == r.state.Current {
		if next := stage.Next(); next != "" {
			r.state.Current = next
		}
	}
	return result, nil
}

// execute runs one stage: handler, output validation, expectation,
// persistence and events. The caller owns pointer advancement.
func (r *Runner) execute(ctx context.Context, stage Stage) (*StageResult, error) {
	handler, ok := r.handlers[stage]
	if !ok {
		return nil, fmt.Errorf("no handler registered for stage %s", stage)
	}

	result := r.state.Results[stage]
	result.Status = StatusRunning
	result.StartedAt = r.now()
	r.state.UpdatedAt = result.StartedAt
	r.emit(ctx, Event{Type: EventStageStarted, Stage: stage})

	output, err := handler(ctx, r.state)
	if err != nil {
		result.Status = StatusFailed
		result.Err = err.Error()
		r.emit(ctx, Event{Type: EventStageFailed, Stage: stage, Error: err.Error()})
		r.metrics.StageFailed(stage)
		return result, fmt.Errorf("stage %s: %w", stage, err)
	}

	if v := ValidateOutput(stage, output); !v.Valid {
		result.Status = StatusFailed
		result.Errors = v.Errors
		vErr := &ValidationFailedError{Stage: stage, Errors: v.Errors}
		result.Err = vErr.Error()
		r.emit(ctx, Event{Type: EventStageFailed, Stage: stage, Error: vErr.Error()})
		r.metrics.ValidationFailure(stage)
		return result, vErr
	}

	completed := r.now()
	result.Status = StatusCompleted
	result.CompletedAt = completed
	result.Duration = completed.Sub(result.StartedAt)
	result.Output = output

	// Forecasting is advisory; a forecast error never fails the stage.
	exp, err := Forecast(stage, output)
	if err != nil {
		r.logger.Warn("expectation forecast failed",
			"stage", stage, "error", err)
	} else {
		result.Expectation = &exp
	}

	r.updateProgress()
	r.persist(ctx, stage, result)
	r.emit(ctx, Event{Type: EventStageCompleted, Stage: stage, Duration: result.Duration})
	if result.Expectation != nil {
		r.emit(ctx, Event{
			Type:        EventExpectationGenerated,
			Stage:       stage,
			Expectation: result.Expectation,
			Summary:     result.Expectation.Summary(),
		})
	}
	r.metrics.ObserveStage(stage, result.Duration)

	return result, nil
}

func (r *Runner) persist(ctx context.Context, stage Stage, result *StageResult) {
	if r.store == nil {
		return
	}
	if err := r.store.Save(ctx, r.state.ProjectID, stage, result); err != nil {
		r.logger.Warn("persist stage result failed",
			"project_id", r.state.ProjectID, "stage", stage, "error", err)
	}
}

func (r *Runner) emit(ctx context.Context, ev Event) {
	if r.publisher == nil {
		return
	}
	ev.ProjectID = r.state.ProjectID
	ev.Timestamp = r.now()
	if err := r.publisher.Publish(ctx, ev); err != nil {
		r.logger.Warn("publish pipeline event failed",
			"type", ev.Type, "stage", ev.Stage, "error", err)
	}
}

func (r *Runner) updateProgress() {
	completed := 0
	for _, result := range r.state.Results {
		if result.Status == StatusCompleted || result.Status == StatusSkipped {
			completed++
		}
	}
	r.state.Progress = Progress{
		Completed:  completed,
		Total:      len(stageOrder),
		Percentage: int(math.Round(float64(completed) / float64(len(stageOrder)) * 100)),
	}
	r.state.UpdatedAt = r.now()
}
