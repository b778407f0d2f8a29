package network

// Symbol is the human-readable name attached to a primary input or primary
// output wire: a bus name, optionally followed by a bracketed bit index
// (e.g. "a[3]" for bit 3 of a bus named "a"; a bare "a" is bit 0 of a
// single-bit bus). Backends that care about the bus/bit split, such as
// rtlil, parse it out themselves.
type Symbol struct {
	Name string
}

// EdgeValue is the per-incoming-edge scratch payload used by the max-flow
// engine during labeling: Flow and Cap hold the residual flow and capacity
// pushed through that edge by the most recent labeling step.
type EdgeValue struct {
	Flow int
	Cap  int
}

// Value is the per-node payload described by the specification's NodeValue:
// optional symbol, optional label, the cut set realizing that label, the
// PI/PO flags, and the scratch flow field used by the max-flow engine's
// node-split transform.
//
// Label is nil until the labeling pass assigns it. Cut is empty until then
// too, after which it holds the node set X̄(n) of the cone this node's LUT
// will absorb; it always contains n itself.
type Value struct {
	Symbol *Symbol
	Label  *int
	Cut    []int
	IsPI   bool
	IsPO   bool
	Flow   int
}

// Labeled reports whether the labeling pass has already visited this node.
func (v *Value) Labeled() bool {
	return v.Label != nil
}

type node struct {
	ancestors   []int
	descendants []int
}
