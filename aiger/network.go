package aiger

import (
	"fmt"

	"github.com/flowmap-go/flowmap/network"
)

// BuildNetwork reads every record from r and populates the resulting
// network per the AIGER variable/literal mapping: node indices 0..2M+1 are
// reserved, node 2v+1 is wired to node 2v by an inverter edge for every
// variable v, literal 0 (AIGER's reserved constant-false) is marked PI
// with label 0, inputs are marked PI with label 0, a latch's state literal
// is marked both PI and PO with an edge from its next-state literal,
// outputs are marked PO, and AND gates add edges from both inputs to the
// (non-inverted) output literal.
func BuildNetwork(r *Reader) (*network.Network, error) {
	h := r.Header()
	maxIndex := 2*h.M + 1
	net := network.New(maxIndex)

	for v := 0; v <= h.M; v++ {
		net.AddEdge(2*v, 2*v+1)
	}

	zeroLabel := 0
	zeroValue := net.Value(0)
	zeroValue.IsPI = true
	zeroValue.Label = &zeroLabel

	for {
		rec, ok := r.Next()
		if !ok {
			break
		}

		switch rec.Kind {
		case RecordInput:
			n := int(rec.Literal)
			lbl := 0
			v := net.Value(n)
			v.IsPI = true
			v.Label = &lbl

		case RecordLatch:
			state := int(rec.Output)
			lbl := 0
			v := net.Value(state)
			v.IsPI = true
			v.IsPO = true
			v.Label = &lbl
			net.AddEdge(int(rec.Next), state)

		case RecordOutput:
			net.Value(int(rec.Literal)).IsPO = true

		case RecordAndGate:
			out := int(rec.Output)
			net.AddEdge(int(rec.Inputs[0]), out)
			net.AddEdge(int(rec.Inputs[1]), out)

		default:
			panic(fmt.Sprintf("aiger: unknown record kind %d", rec.Kind))
		}
	}

	if err := r.Err(); err != nil {
		return nil, err
	}

	return net, nil
}
