// Package genaig generates random AND-inverter networks for property-based
// testing of the labeling and mapping passes. It plays the role the
// teacher's builder package plays for graph generation: a single
// deterministic, seeded constructor (Random) rather than a general-purpose
// fuzzer.
package genaig
