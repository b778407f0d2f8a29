// Package mapping implements the FlowMap mapping pass (component F): given
// a network already labeled by package label, walk back from the primary
// outputs and emit one LUT per node that needs one, each carrying the
// node's cut X̄(n) as its absorbed logic and the inputs of that cut as its
// LUT inputs.
//
// The walk starts at every PO node and proceeds via a worklist seeded by
// each LUT's own inputs, so a LUT is only ever emitted for a node actually
// reachable from some output. A plain primary input that is not itself a
// primary output produces no LUT: it is a wire, not a gate.
package mapping
