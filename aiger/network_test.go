package aiger_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowmap-go/flowmap/aiger"
)

func buildFrom(t *testing.T, s string) *aiger.Reader {
	t.Helper()
	r, err := aiger.NewReader(strings.NewReader(s))
	require.NoError(t, err)
	return r
}

func TestBuildNetworkCountsAndFlags(t *testing.T) {
	// Half adder: aag 7 2 0 2 3.
	r := buildFrom(t, strings.Join([]string{
		"aag 7 2 0 2 3",
		"2",
		"4",
		"6",
		"12",
		"6 13 15",
		"12 2 4",
		"14 3 5",
		"",
	}, "\n"))

	net, err := aiger.BuildNetwork(r)
	require.NoError(t, err)

	assert.Equal(t, 16, net.NodeCount()) // 2M+2 = 2*7+2

	piCount, poCount := 0, 0
	for n := 0; n < net.NodeCount(); n++ {
		v := net.Value(n)
		if v.IsPI {
			piCount++
		}
		if v.IsPO {
			poCount++
		}
	}
	assert.Equal(t, 3, piCount) // I(2) + L(0) + literal 0
	assert.Equal(t, 2, poCount) // O(2) + L(0)

	// The inverter edge for every variable always exists.
	for v := 0; v <= 7; v++ {
		assert.Equal(t, []int{2 * v}, net.Ancestors(2*v+1))
	}

	// AND gate 6 <- 13, 15 and 12 <- 2, 4.
	assert.ElementsMatch(t, []int{13, 15}, net.Ancestors(6))
	assert.ElementsMatch(t, []int{2, 4}, net.Ancestors(12))
}

func TestBuildNetworkLatchMarksBothPIAndPO(t *testing.T) {
	r := buildFrom(t, strings.Join([]string{
		"aag 7 2 1 2 4",
		"2",
		"4",
		"6 8",
		"6",
		"7",
		"8 4 10",
		"10 13 15",
		"12 2 6",
		"14 3 7",
		"",
	}, "\n"))

	net, err := aiger.BuildNetwork(r)
	require.NoError(t, err)

	v := net.Value(6)
	assert.True(t, v.IsPI)
	assert.True(t, v.IsPO)
	assert.ElementsMatch(t, []int{8}, net.Ancestors(6))
}

func TestBuildNetworkZeroLiteralIsPI(t *testing.T) {
	r := buildFrom(t, "aag 1 0 0 1 0\n0\n")

	net, err := aiger.BuildNetwork(r)
	require.NoError(t, err)

	v := net.Value(0)
	assert.True(t, v.IsPI)
	require.NotNil(t, v.Label)
	assert.Equal(t, 0, *v.Label)
}
