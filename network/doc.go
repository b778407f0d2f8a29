// Package network implements the Boolean network that FlowMap operates on:
// a directed acyclic graph over a contiguous, zero-based node-index space,
// where every literal value (as produced by an AIG frontend) is a first-class
// node rather than an edge annotation.
//
// A Network is built once (via New and repeated AddEdge calls) and then
// mutated in place by the labeling and mapping passes through the per-node
// Value accessor. There is no concurrent access: a Network is owned
// exclusively by whichever pass is currently running, per the sequential
// construct → label → map → evaluate pipeline described in the package
// flowmap/label and flowmap/mapping documentation.
//
// Node and edge lookups are index-checked and panic on an out-of-range
// index or a missing edge: these are programmer errors, not recoverable
// conditions, and the package fails fast with a descriptive message rather
// than propagating a silent wrong answer.
package network
