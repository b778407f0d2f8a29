package topo

import "github.com/flowmap-go/flowmap/network"

// Order is a streaming topological-order iterator over a network.Network.
type Order struct {
	net     *network.Network
	pending []int
	visited []bool
}

// New initializes an Order over net, seeding the frontier with every node
// that has no ancestors (the primary inputs).
func New(net *network.Network) *Order {
	o := &Order{
		net:     net,
		visited: make([]bool, net.NodeCount()),
	}

	for n := 0; n < net.NodeCount(); n++ {
		if len(net.Ancestors(n)) == 0 {
			o.pending = append(o.pending, n)
		}
	}

	return o
}

// Next returns the next node in topological order and true, or (0, false)
// once every node has been returned.
func (o *Order) Next() (int, bool) {
	if len(o.pending) == 0 {
		return 0, false
	}

	last := len(o.pending) - 1
	n := o.pending[last]
	o.pending = o.pending[:last]
	o.visited[n] = true

	for _, d := range o.net.Descendants(n) {
		if o.allAncestorsVisited(d) {
			o.pending = append(o.pending, d)
		}
	}

	return n, true
}

func (o *Order) allAncestorsVisited(n int) bool {
	for _, a := range o.net.Ancestors(n) {
		if !o.visited[a] {
			return false
		}
	}

	return true
}
