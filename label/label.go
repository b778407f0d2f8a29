package label

import (
	"fmt"

	"github.com/flowmap-go/flowmap/maxflow"
	"github.com/flowmap-go/flowmap/network"
	"github.com/flowmap-go/flowmap/topo"
)

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// LabelNetwork performs the FlowMap labeling pass over net with LUT size k,
// visiting every node in topological order. Primary inputs are assumed
// pre-labeled by the caller (conventionally label 0) and are skipped.
func LabelNetwork(net *network.Network, k int) {
	order := topo.New(net)

	for {
		n, ok := order.Next()
		if !ok {
			break
		}

		if net.Value(n).IsPI {
			continue
		}

		lbl, cut := labelNode(net, n, k)
		net.Value(n).Label = &lbl
		net.Value(n).Cut = cut
	}
}

// labelNode computes the label and cut for a single non-PI node, per the
// algorithm summarized in the package doc comment.
func labelNode(net *network.Network, node int, k int) (int, []int) {
	p := -1
	for _, a := range net.Ancestors(node) {
		lbl := net.Value(a).Label
		if lbl == nil {
			panic(fmt.Sprintf("label: ancestor %d of %d is not labeled", a, node))
		}
		if *lbl > p {
			p = *lbl
		}
	}
	if p < 0 {
		panic(fmt.Sprintf("label: node %d being labeled has no ancestors", node))
	}

	if p == 0 {
		// Every ancestor is a PI: collapsing everything labeled >= p leaves
		// only an edge of infinite capacity between Source and Sink, so the
		// max-flow is unbounded and n must take its own LUT.
		return p + 1, []int{node}
	}

	var source, sink, visited []int
	sink = append(sink, net.Ancestors(node)...)

	stack := []int{node}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ancestors := net.Ancestors(n)
		net.Value(n).Flow = 0

		for _, a := range ancestors {
			ev := net.EdgeValue(a, n)
			ev.Flow = 0
			ev.Cap = 1

			if containsInt(visited, a) {
				continue
			}

			av := net.Value(a)
			if av.Label != nil && *av.Label == p {
				// a is absorbed by the cut search: its own ancestors feed
				// the sink in its place.
				for _, a2 := range net.Ancestors(a) {
					if !containsInt(sink, a2) {
						sink = append(sink, a2)
					}
				}
			} else if av.IsPI {
				source = append(source, a)
			} else {
				ev.Cap = maxflow.Infinity
			}

			visited = append(visited, a)
			stack = append(stack, a)
		}
	}

	eng := maxflow.New(net, node, source, sink)
	maxFlow := 0
	for eng.Step() {
		maxFlow++
	}

	if maxFlow <= k {
		cutNodes := append(append([]int{}, visited...), node)
		return p, eng.Cut(cutNodes)
	}

	return p + 1, []int{node}
}
