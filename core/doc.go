// Package core provides the in-memory Graph that backs a single diagram
// session: nodes carry a geometric footprint (geometry.Shape), edges carry
// the contact pair a connect.Info produced them from, and both catalogs are
// protected by separate locks so read-heavy UI queries never block on
// unrelated mutations.
//
// The Graph G = (V,E) is undirected: AddEdge stores one oriented record
// (Source -> Target, with per-endpoint contact points) but HasEdge,
// EdgeBetween, and Neighbors all treat it symmetrically. An edge's identity
// is the canonical lexicographically-ordered key of its two endpoint IDs, so
// a second AddEdge between the same pair of nodes is rejected as a
// Duplicate rather than silently stored twice.
//
//   - Separate sync.RWMutex for nodes (muNode) and edges+adjacency
//     (muEdgeAdj), mirroring the separation of concerns that keeps topology
//     mutations from blocking geometry reads.
//   - Deterministic iteration: Nodes() and Edges() return results sorted by
//     ID; Neighbors() returns neighbor IDs sorted.
//   - A spatial index (index.go, backed by rtreego.Rtree) supports
//     NodeAt/NearestNode hit-testing without a linear scan over every node.
//   - Clone()/CloneEmpty() support the editor's undo-safe snapshotting.
package core
