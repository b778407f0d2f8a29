package flowmap

import (
	"github.com/flowmap-go/flowmap/label"
	"github.com/flowmap-go/flowmap/mapping"
	"github.com/flowmap-go/flowmap/network"
)

// Map labels net for LUT size k and returns its K-LUT covering.
func Map(net *network.Network, k int) []mapping.LUT {
	label.LabelNetwork(net, k)
	return mapping.Map(net)
}
