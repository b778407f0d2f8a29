package genaig

import (
	"fmt"
	"math/rand"

	"github.com/flowmap-go/flowmap/network"
)

// File-local constants governing the shape of generated networks.
const (
	minPrimaryInputs = 1
	minGates         = 1
	// inverterProbability is the chance a gate is generated as a 1-input
	// inverter rather than a 2-input AND gate.
	inverterProbability = 0.25
	// outputProbability is the chance any given gate is also marked as a
	// primary output, independent of the others.
	outputProbability = 0.3
)

// Config bounds a Random network's shape.
type Config struct {
	PrimaryInputs int
	Gates         int
}

// Random builds a network of cfg.PrimaryInputs primary inputs followed by
// cfg.Gates gates, each an AND gate or inverter whose ancestors are drawn
// uniformly from the nodes already constructed (so the result is always a
// valid DAG), and marks a random non-empty subset of gates as primary
// outputs.
//
// Node 0..PrimaryInputs-1 are the primary inputs; PrimaryInputs..
// PrimaryInputs+Gates-1 are the gates, in construction (and therefore
// topological) order.
func Random(rng *rand.Rand, cfg Config) (*network.Network, error) {
	if cfg.PrimaryInputs < minPrimaryInputs {
		return nil, fmt.Errorf("genaig: PrimaryInputs=%d < %d", cfg.PrimaryInputs, minPrimaryInputs)
	}
	if cfg.Gates < minGates {
		return nil, fmt.Errorf("genaig: Gates=%d < %d", cfg.Gates, minGates)
	}

	maxIndex := cfg.PrimaryInputs + cfg.Gates - 1
	net := network.New(maxIndex)

	for n := 0; n < cfg.PrimaryInputs; n++ {
		lbl := 0
		v := net.Value(n)
		v.IsPI = true
		v.Label = &lbl
	}

	hasPO := false
	for n := cfg.PrimaryInputs; n <= maxIndex; n++ {
		if rng.Float64() < inverterProbability {
			a := rng.Intn(n)
			net.AddEdge(a, n)
		} else {
			a := rng.Intn(n)
			b := rng.Intn(n)
			net.AddEdge(a, n)
			net.AddEdge(b, n)
		}

		if rng.Float64() < outputProbability {
			net.Value(n).IsPO = true
			hasPO = true
		}
	}

	if !hasPO {
		net.Value(maxIndex).IsPO = true
	}

	return net, nil
}
