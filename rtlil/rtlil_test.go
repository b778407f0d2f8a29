package rtlil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowmap-go/flowmap/mapping"
	"github.com/flowmap-go/flowmap/network"
	"github.com/flowmap-go/flowmap/rtlil"
)

func TestTruthTableSingleAndGate(t *testing.T) {
	net := network.New(6)
	net.AddEdge(2, 6)
	net.AddEdge(4, 6)

	lut := mapping.LUT{Output: 6, Contains: []int{6}, Inputs: []int{2, 4}}
	table := rtlil.TruthTable(net, lut)

	// index bit0=input0(2), bit1=input1(4): f = in0 && in1.
	assert.Equal(t, []bool{false, false, false, true}, table)
}

func TestWriteEmitsLUTCellAndIOWires(t *testing.T) {
	net := network.New(6)
	net.AddEdge(2, 6)
	net.AddEdge(4, 6)
	net.Value(2).IsPI = true
	net.Value(2).Symbol = &network.Symbol{Name: "a"}
	net.Value(4).IsPI = true
	net.Value(4).Symbol = &network.Symbol{Name: "b"}
	net.Value(6).IsPO = true
	net.Value(6).Symbol = &network.Symbol{Name: "y"}

	lut := mapping.LUT{Output: 6, Contains: []int{6}, Inputs: []int{2, 4}}

	var buf strings.Builder
	err := rtlil.Write(&buf, net, []mapping.LUT{lut})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "module \\top\n"))
	assert.Contains(t, out, "wire width 1 $ni$6\n")
	assert.Contains(t, out, `\a`)
	assert.Contains(t, out, `\b`)
	assert.Contains(t, out, `\y`)
	assert.Contains(t, out, "parameter \\WIDTH 2\n")
	assert.Contains(t, out, "parameter \\LUT 4'1000\n")
	assert.Contains(t, out, "connect \\Y $ni$6\n")
	assert.Contains(t, out, "connect \\A { $ni$4 $ni$2 }\n")
	assert.True(t, strings.HasSuffix(out, "end\n"))
}

func TestWriteOmitsConstantsFromWires(t *testing.T) {
	net := network.New(3)
	net.AddEdge(0, 1)
	net.AddEdge(2, 3)
	net.Value(2).IsPI = true
	net.Value(3).IsPO = true

	var buf strings.Builder
	err := rtlil.Write(&buf, net, nil)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "$ni$0")
	assert.NotContains(t, buf.String(), "$ni$1")
}
