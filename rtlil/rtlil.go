package rtlil

import (
	"fmt"
	"io"

	"github.com/flowmap-go/flowmap/luteval"
	"github.com/flowmap-go/flowmap/mapping"
	"github.com/flowmap-go/flowmap/network"
)

type wireKind uint8

const (
	wireInput wireKind = iota
	wireOutput
)

type wire struct {
	node   int
	symbol string
	bit    int
	kind   wireKind
}

// defaultSymbol names a node with no explicit Symbol the way the original
// reference backend does: "input$<i>" or "output$<i>", bit 0.
func defaultSymbol(kind wireKind, node int) string {
	if kind == wireInput {
		return fmt.Sprintf("input$%d", node)
	}
	return fmt.Sprintf("output$%d", node)
}

func collectWires(net *network.Network) []wire {
	var wires []wire

	for n := 0; n < net.NodeCount(); n++ {
		if n <= 1 {
			// Constants are never emitted as wires.
			continue
		}

		v := net.Value(n)
		var kind wireKind
		switch {
		case v.IsPI:
			kind = wireInput
		case v.IsPO:
			kind = wireOutput
		default:
			continue
		}

		var name string
		bit := 0
		if v.Symbol != nil {
			name, bit = symbolAndBit(v.Symbol.Name)
		} else {
			name = defaultSymbol(kind, n)
		}

		wires = append(wires, wire{node: n, symbol: name, bit: bit, kind: kind})
	}

	return wires
}

// Write emits net and its LUT covering as RTLIL text to w, evaluating each
// LUT's truth table with package luteval.
func Write(w io.Writer, net *network.Network, luts []mapping.LUT) error {
	wires := collectWires(net)

	if _, err := fmt.Fprintln(w, `module \top`); err != nil {
		return err
	}

	for _, lut := range luts {
		if _, err := fmt.Fprintf(w, "  wire width 1 $ni$%d\n", lut.Output); err != nil {
			return err
		}
	}

	written := map[string]bool{}
	for i, wr := range wires {
		if written[wr.symbol] {
			continue
		}
		written[wr.symbol] = true

		maxBit := wr.bit
		for _, other := range wires {
			if other.symbol == wr.symbol && other.bit > maxBit {
				maxBit = other.bit
			}
		}
		width := maxBit + 1

		kindStr := "input"
		if wr.kind == wireOutput {
			kindStr = "output"
		}
		if _, err := fmt.Fprintf(w, "  wire width %d %s %d \\%s\n", width, kindStr, i, wr.symbol); err != nil {
			return err
		}

		for _, other := range wires {
			if other.symbol != wr.symbol {
				continue
			}
			switch other.kind {
			case wireInput:
				if _, err := fmt.Fprintf(w, "  wire width 1 $ni$%d\n", other.node); err != nil {
					return err
				}
				if _, err := fmt.Fprintf(w, "  connect $ni$%d \\%s [%d]\n", other.node, wr.symbol, other.bit); err != nil {
					return err
				}
			case wireOutput:
				if _, err := fmt.Fprintf(w, "  connect \\%s [%d] $ni$%d\n", wr.symbol, other.bit, other.node); err != nil {
					return err
				}
			}
		}
	}

	for _, lut := range luts {
		k := len(lut.Inputs)
		bits := TruthTable(net, lut)
		if len(bits) != 1<<k {
			panic(fmt.Sprintf("rtlil: lut %d truth table has %d entries, want %d for %d inputs", lut.Output, len(bits), 1<<k, k))
		}

		bitstring := make([]byte, len(bits))
		for i, b := range bits {
			c := byte('0')
			if b {
				c = '1'
			}
			bitstring[len(bits)-1-i] = c
		}

		if _, err := fmt.Fprintf(w, "  cell $lut $lut$%d\n", lut.Output); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "    parameter \\WIDTH %d\n", k); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "    parameter \\LUT %d'%s\n", 1<<k, bitstring); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "    connect \\Y $ni$%d\n", lut.Output); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, "    connect \\A {"); err != nil {
			return err
		}
		// Last input first: RTLIL concatenation is MSB-first, so A[i] is
		// lut.Inputs[i], matching bit i of the truth-table index.
		for i := len(lut.Inputs) - 1; i >= 0; i-- {
			if _, err := fmt.Fprintf(w, " $ni$%d", lut.Inputs[i]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, " }"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "  end"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "end"); err != nil {
		return err
	}

	return nil
}

// TruthTable evaluates lut for every one of its 2^k input assignments, bit
// i of the assignment index selecting lut.Inputs[i], and returns the
// results in index order (index 0 first).
func TruthTable(net *network.Network, lut mapping.LUT) []bool {
	f := luteval.Evaluate(net, lut)
	k := len(lut.Inputs)

	table := make([]bool, 1<<k)
	values := make([]bool, k)
	for idx := 0; idx < len(table); idx++ {
		for i := range values {
			values[i] = idx&(1<<i) != 0
		}
		table[idx] = f(values)
	}

	return table
}
