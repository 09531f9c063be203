// Package editor implements the atomic edit commands, undo journal, and
// interaction state machine that sit on top of a core.Graph: every mutation
// a user can make (adding or deleting an edge, splitting an edge with a
// connector, dragging a node, optimizing an edge's perpendicularity) goes
// through one exported command method here, which both applies the change
// and pushes an exactly-reversible record onto a bounded undo deque.
package editor
