// Package flowmap ties the mapper's passes together: Map runs the
// labeling pass (package label) followed by the mapping pass (package
// mapping) over an already-constructed network.Network, the way the
// reference frontend/backend pipeline (package aiger, package rtlil) and
// the CLI (cmd/flowmap) both expect to call it.
//
// The passes are strictly sequential and each takes exclusive ownership
// of the network for its duration; there is nothing to synchronize.
package flowmap
