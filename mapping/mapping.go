package mapping

import "github.com/flowmap-go/flowmap/network"

// LUT describes one K-input lookup table: Output is the node whose logic
// it realizes, Contains is the cut X̄(Output) of nodes the LUT absorbs, and
// Inputs are the nodes feeding that cut from outside it (in the order
// discovered while walking the cut's ancestors).
type LUT struct {
	Output   int
	Contains []int
	Inputs   []int
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// inputs returns the nodes that feed the cut xBar from outside itself: the
// ancestors of every node in xBar that are not themselves in xBar.
func inputs(net *network.Network, xBar []int) []int {
	var out []int
	for _, n := range xBar {
		for _, a := range net.Ancestors(n) {
			if !containsInt(xBar, a) && !containsInt(out, a) {
				out = append(out, a)
			}
		}
	}
	return out
}

// Map walks every primary output backward through the labeled network and
// emits one LUT per node whose cut is reached, skipping nodes that are
// primary inputs but not also primary outputs.
func Map(net *network.Network) []LUT {
	var luts []LUT
	done := map[int]bool{}

	var stack []int
	for n := 0; n < net.NodeCount(); n++ {
		if net.Value(n).IsPO {
			stack = append(stack, n)
		}
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if done[n] {
			continue
		}

		v := net.Value(n)
		if v.IsPI && !v.IsPO {
			continue
		}

		done[n] = true

		// A node that is both PI and PO is a latch state literal: the
		// labeling pass never assigns it a cut (it skips all PIs), so it
		// gets the degenerate single-node cut of a pass-through wire, its
		// one real ancestor being the next-state literal that drives it.
		cut := v.Cut
		if v.IsPI && v.IsPO {
			cut = []int{n}
		}

		in := inputs(net, cut)
		luts = append(luts, LUT{Output: n, Contains: cut, Inputs: in})

		for _, i := range in {
			if !done[i] {
				stack = append(stack, i)
			}
		}
	}

	return luts
}
