package luteval

import (
	"fmt"

	"github.com/flowmap-go/flowmap/mapping"
	"github.com/flowmap-go/flowmap/network"
)

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// Evaluate compiles lut into a function of its declared inputs. Values
// passed to the returned function must line up positionally with
// lut.Inputs.
func Evaluate(net *network.Network, lut mapping.LUT) func(inputs []bool) bool {
	tree := literalNode(lut.Output)

	visited := map[int]bool{}
	stack := []int{lut.Output}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[n] {
			continue
		}
		visited[n] = true

		if containsInt(lut.Inputs, n) {
			continue
		}

		ancestors := net.Ancestors(n)
		switch len(ancestors) {
		case 1:
			parent := ancestors[0]
			tree = tree.replace(n, inverterNode(literalNode(parent)))
		case 2:
			in0, in1 := ancestors[0], ancestors[1]
			tree = tree.replace(n, andNode(literalNode(in0), literalNode(in1)))
		default:
			panic(fmt.Sprintf("luteval: node %d inside a LUT's cut has %d ancestors, want 1 (inverter) or 2 (and gate)", n, len(ancestors)))
		}

		for _, a := range ancestors {
			remaining := false
			for _, d := range net.Descendants(a) {
				if containsInt(lut.Contains, d) && !visited[d] {
					remaining = true
					break
				}
			}
			if !remaining {
				stack = append(stack, a)
			}
		}
	}

	return func(values []bool) bool {
		resolved := tree
		for i, lit := range lut.Inputs {
			resolved = resolved.replace(lit, valueNode(values[i]))
		}
		return resolved.evaluate()
	}
}
