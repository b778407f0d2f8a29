package network

import "fmt"

// Network is the core in-memory Boolean network: a directed acyclic graph
// over node indices [0, maxIndex], with ordered ancestor/descendant lists
// and a per-node Value payload.
//
// Storage is three flat, index-parallel slices (nodes, values, edgeValues)
// rather than a map keyed by some opaque ID, so that the max-flow engine
// can address visited/parent scratch state by plain array index instead of
// hashing. There is no internal locking: a Network is owned exclusively by
// whichever pass — frontend construction, labeling, or mapping — is
// currently running.
type Network struct {
	nodes      []node
	values     []Value
	edgeValues [][]EdgeValue
	maxIndex   int
}

// New creates a Network with node indices [0, maxIndex], all default
// constructed (unlabeled, not PI/PO, no symbol).
func New(maxIndex int) *Network {
	n := maxIndex + 1
	return &Network{
		nodes:      make([]node, n),
		values:     make([]Value, n),
		edgeValues: make([][]EdgeValue, n),
		maxIndex:   maxIndex,
	}
}

// NodeCount returns maxIndex+1, the number of nodes in the network.
func (net *Network) NodeCount() int {
	return net.maxIndex + 1
}

func (net *Network) checkIndex(n int) {
	if n < 0 || n > net.maxIndex {
		panic(fmt.Sprintf("network: node index out of bounds: the maximum node index is %d but the node index is %d", net.maxIndex, n))
	}
}

// Ancestors returns the direct incoming-edge sources of n, in the order the
// edges were added.
func (net *Network) Ancestors(n int) []int {
	net.checkIndex(n)
	return net.nodes[n].ancestors
}

// Descendants returns the direct outgoing-edge targets of n, in the order
// the edges were added.
func (net *Network) Descendants(n int) []int {
	net.checkIndex(n)
	return net.nodes[n].descendants
}

// Value returns a pointer to n's payload, for both reading and mutation.
func (net *Network) Value(n int) *Value {
	net.checkIndex(n)
	return &net.values[n]
}

// AddEdge appends an edge from → to. Parallel edges are tolerated without
// a duplicate check: an AND gate with two identical inputs legitimately
// produces two edges between the same pair of nodes.
func (net *Network) AddEdge(from, to int) {
	net.checkIndex(from)
	net.checkIndex(to)

	net.nodes[to].ancestors = append(net.nodes[to].ancestors, from)
	net.nodes[from].descendants = append(net.nodes[from].descendants, to)
	net.edgeValues[to] = append(net.edgeValues[to], EdgeValue{})
}

// EdgeValue returns a pointer to the payload of the edge from → to, found
// by a linear scan of to's ancestor list. Panics if the edge does not
// exist: callers always look up edges they themselves just added.
func (net *Network) EdgeValue(from, to int) *EdgeValue {
	net.checkIndex(from)
	net.checkIndex(to)

	for i, a := range net.nodes[to].ancestors {
		if a == from {
			return &net.edgeValues[to][i]
		}
	}

	panic(fmt.Sprintf("network: no edge %d -> %d", from, to))
}
