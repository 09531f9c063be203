// File: editor.go
// Role: Editor type tying together a core.Graph, the undo journal, the
// manual-id generator, and the event stream.
package editor

import (
	"sync"

	"github.com/pidforge/pidgraph/core"
)

// Editor wraps a core.Graph with undo-tracked edit commands.
type Editor struct {
	mu     sync.Mutex
	graph  *core.Graph
	journal *undoJournal
	ids    *idGenerator
	cfg    *editorConfig

	events    chan Event
	closeOnce sync.Once

	state *interactionState
}

// NewEditor wraps an existing graph (e.g. one produced by schema.Load) in
// an Editor. If g is nil, a fresh empty core.Graph is created.
func NewEditor(g *core.Graph, opts ...Option) *Editor {
	if g == nil {
		g = core.NewGraph()
	}
	cfg := newEditorConfig(opts...)
	e := &Editor{
		graph:   g,
		journal: newUndoJournal(cfg.undoCapacity),
		ids:     newIDGenerator(),
		cfg:     cfg,
		events:  make(chan Event, 64),
	}
	e.state = newInteractionState(e)
	return e
}

// Graph returns the underlying graph. Callers may read freely; mutation
// should go through the Editor's command methods so undo stays consistent.
func (e *Editor) Graph() *core.Graph {
	return e.graph
}

// Undo reverses the most recently applied command. Returns
// ErrNothingToUndo if the journal is empty.
func (e *Editor) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.journal.pop()
	if !ok {
		return ErrNothingToUndo
	}
	return rec.apply(e.graph)
}

// UndoDepth returns the number of records currently in the undo journal.
func (e *Editor) UndoDepth() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.journal.len()
}
