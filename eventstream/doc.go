// Package eventstream broadcasts an editor.Editor's event channel to
// connected websocket clients, per spec.md §9's Design Notes on a
// renderer-facing event stream and SPEC_FULL.md §11. The hub is read-only:
// it never accepts inbound mutating commands from a socket, and it never
// writes to the editor's graph.
package eventstream
