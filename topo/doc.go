// Package topo provides a streaming, Kahn-style topological ordering over a
// network.Network.
//
// Unlike a batch sort that returns a fully materialized slice, Order is an
// iterator: its Next method pops one ready node at a time from an internal
// frontier. This lets a caller (the labeling pass) interleave its own node
// mutations between calls to Next without perturbing the remaining order —
// mutating a node's label after it has been visited never changes which
// nodes become ready next, since readiness depends only on graph structure.
//
// Order within a rank (nodes with no remaining dependency between them) is
// unspecified; any topological order is acceptable per the network's
// acyclicity invariant.
package topo
