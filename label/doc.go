// Package label implements the FlowMap labeling pass (component E of the
// mapper): a single topological sweep that assigns every non-PI node n a
// label, the depth of the optimal K-LUT realizable at n, together with the
// cut X̄(n) — the node set that LUT would absorb.
//
// For each node, the pass first takes p, the maximum label among n's
// direct ancestors. If p is zero, every ancestor is a primary input, so a
// single LUT already spans the whole cone and n is labeled p+1 with
// X̄(n) = {n}. Otherwise it walks every node reachable backward from n and
// sets up a max-flow computation (component D) over them: primary inputs
// are wired to Source; n's direct ancestors are wired to Sink, and so are
// the ancestors of every node labeled exactly p, which collapses those
// nodes into the sink side; every other node stays in the flow graph as a
// unit-capacity vertex. If the resulting max-flow value is within K, n is
// labeled p with
// the min-cut as X̄(n); otherwise n is labeled p+1 and falls back to
// X̄(n) = {n}.
//
// LabelNetwork drives this over every node in topological order, skipping
// primary inputs (which arrive pre-labeled 0 by the caller).
package label
