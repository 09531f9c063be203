// File: config.go
// Role: Functional-options configuration for Editor, in the
// defaults-then-apply style used throughout this codebase's constructors.
package editor

import "time"

// Option customizes an Editor's behavior before it starts accepting
// commands. Option constructors validate and panic on meaningless inputs;
// the commands themselves never panic.
type Option func(cfg *editorConfig)

// metricsRecorder is the subset of metrics.Recorder's behavior Editor
// depends on, declared locally so this package never imports
// prometheus — metrics stays a one-way, optional dependency wired in by
// the caller, per SPEC_FULL.md §11.
type metricsRecorder interface {
	ObserveCommand(command string, err error)
	ObserveOptimizeAllDuration(d time.Duration)
	SetBadEdges(n int)
}

// editorConfig holds Editor's tunables. Not safe for concurrent mutation;
// each NewEditor call builds its own config.
type editorConfig struct {
	undoCapacity  int
	hitRadiusNode float64
	hitRadiusEdge float64
	metrics       metricsRecorder
}

func newEditorConfig(opts ...Option) *editorConfig {
	cfg := &editorConfig{
		undoCapacity:  50,
		hitRadiusNode: 20.0,
		hitRadiusEdge: 15.0,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMetrics attaches a recorder that counts each command that succeeds
// (a command that returns an error is not recorded) and observes the
// duration of OptimizeAllBadEdges calls. A Recorder's own methods
// are nil-safe, so passing one built with metrics.NewRecorder is always
// fine; omitting this option simply leaves instrumentation off.
func WithMetrics(r metricsRecorder) Option {
	return func(cfg *editorConfig) { cfg.metrics = r }
}

// WithUndoCapacity bounds the number of undo records retained; the oldest
// record is dropped once the bound is exceeded. Panics if n <= 0.
func WithUndoCapacity(n int) Option {
	if n <= 0 {
		panic("editor: WithUndoCapacity(n<=0)")
	}
	return func(cfg *editorConfig) { cfg.undoCapacity = n }
}

// WithHitRadiusNode sets the pixel hit-test radius used by node selection
// (AddEdge/DeleteEdge/DeleteNode/DragNode modes). Panics if r <= 0.
func WithHitRadiusNode(r float64) Option {
	if r <= 0 {
		panic("editor: WithHitRadiusNode(r<=0)")
	}
	return func(cfg *editorConfig) { cfg.hitRadiusNode = r }
}

// WithHitRadiusEdge sets the pixel hit-test radius used by edge selection
// (OptimizeEdge/AddConnector modes). Panics if r <= 0.
func WithHitRadiusEdge(r float64) Option {
	if r <= 0 {
		panic("editor: WithHitRadiusEdge(r<=0)")
	}
	return func(cfg *editorConfig) { cfg.hitRadiusEdge = r }
}
