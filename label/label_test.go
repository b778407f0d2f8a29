package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowmap-go/flowmap/label"
	"github.com/flowmap-go/flowmap/network"
)

func pi(net *network.Network, n int) {
	lbl := 0
	v := net.Value(n)
	v.Label = &lbl
	v.IsPI = true
}

func requireLabel(t *testing.T, net *network.Network, n, want int) {
	t.Helper()
	v := net.Value(n)
	require.NotNil(t, v.Label, "node %d should be labeled", n)
	assert.Equal(t, want, *v.Label)
}

func TestLabelNetworkFig5a(t *testing.T) {
	// Fig. 5(a) from the FlowMap paper, numbered top-to-bottom, left-to-right.
	net := network.New(12)
	net.AddEdge(0, 5)
	net.AddEdge(1, 5)
	net.AddEdge(1, 6)
	net.AddEdge(2, 6)
	net.AddEdge(3, 7)
	net.AddEdge(4, 7)
	net.AddEdge(5, 8)
	net.AddEdge(5, 12)
	net.AddEdge(6, 8)
	net.AddEdge(6, 10)
	net.AddEdge(7, 9)
	net.AddEdge(7, 11)
	net.AddEdge(8, 9)
	net.AddEdge(9, 10)
	net.AddEdge(10, 11)
	net.AddEdge(11, 12)

	for n := 0; n <= 4; n++ {
		pi(net, n)
	}

	label.LabelNetwork(net, 3)

	for n := 0; n <= 4; n++ {
		requireLabel(t, net, n, 0)
	}

	requireLabel(t, net, 5, 1)
	requireLabel(t, net, 6, 1)
	requireLabel(t, net, 7, 1)
	requireLabel(t, net, 8, 1)
	requireLabel(t, net, 9, 2)
	requireLabel(t, net, 10, 2)
	requireLabel(t, net, 11, 2)
	requireLabel(t, net, 12, 2)

	assert.ElementsMatch(t, []int{5}, net.Value(5).Cut)
	assert.ElementsMatch(t, []int{6}, net.Value(6).Cut)
	assert.ElementsMatch(t, []int{7}, net.Value(7).Cut)
	assert.ElementsMatch(t, []int{5, 6, 8}, net.Value(8).Cut)
	assert.ElementsMatch(t, []int{9}, net.Value(9).Cut)
	assert.ElementsMatch(t, []int{8, 9, 10}, net.Value(10).Cut)
	assert.ElementsMatch(t, []int{8, 9, 10, 11}, net.Value(11).Cut)
	assert.ElementsMatch(t, []int{8, 9, 10, 11, 12}, net.Value(12).Cut)
}

// TestLabelNetworkUncollapsedAncestorFeedsSink guards against a regression
// where an edge into a node being labeled, whose source is not collapsed
// into the cut search, was dropped from the flow graph entirely: any edge
// into the sink must come either from a collapsed node's ancestors or from
// a direct ancestor of the node under label, regardless of whether that
// ancestor itself gets visited by the backward search.
//
//	0   1    2
//	|   v    v
//	\-> 3 -> 4
func TestLabelNetworkUncollapsedAncestorFeedsSink(t *testing.T) {
	net := network.New(4)
	net.AddEdge(0, 3)
	net.AddEdge(1, 3)
	net.AddEdge(2, 4)
	net.AddEdge(3, 4)

	for _, n := range []int{0, 1, 2} {
		pi(net, n)
	}

	label.LabelNetwork(net, 2)

	requireLabel(t, net, 3, 1)
	requireLabel(t, net, 4, 2)
}

func TestLabelNetworkSkipsPrimaryInputs(t *testing.T) {
	net := network.New(1)
	net.AddEdge(0, 1)
	pi(net, 0)

	label.LabelNetwork(net, 3)

	requireLabel(t, net, 0, 0)
	requireLabel(t, net, 1, 1)
}
