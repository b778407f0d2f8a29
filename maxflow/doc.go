// Package maxflow implements the node-split augmenting-path max-flow engine
// at the heart of FlowMap's labeling pass.
//
// Every original network node n is split into two residual vertices,
// Before(n) and After(n), joined by a capacity-1 edge: this is how a
// node-capacity constraint ("at most one LUT input may pass through n") is
// expressed on an edge-capacity max-flow formulation without altering the
// underlying network.Network. Every original edge u→v becomes an edge
// After(u)→Before(v) with capacity governed by the caller (the labeling
// pass sets these to 1 or to a large sentinel meant to behave as infinite).
// A distinguished Source and Sink complete the graph; the caller supplies
// the list of original nodes to connect from Source and to Sink.
//
// Engine is single-use: construct one per node being labeled, call Step
// repeatedly until it returns false, then call Cut to recover the min-cut
// node set. The number of Step calls that returned true is the max-flow
// value. Engine never fails: the absence of an augmenting path is reported
// by Step's boolean return, never an error.
//
// Residual vertices are addressed by a small integer id rather than a
// pointer or hash key, so that the visited/parent scratch arrays used by
// Step and Cut are plain slices indexed in O(1). This mirrors the
// parent-array design called out as authoritative in the algorithm's
// design notes: earlier path-as-vector and hash-map sketches of this
// engine are not followed here.
package maxflow
