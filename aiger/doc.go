// Package aiger parses the ASCII AIGER format into a network.Network.
//
// AIGER represents a combinational (or latch-bounded sequential) circuit as
// a header line "aag M I L O A" followed by I input literals, L two-literal
// latch records, O output literals, and A three-literal AND-gate records,
// one per line, every literal an unsigned integer encoding a variable
// index and a polarity bit (variable = literal/2, inverted = literal odd).
//
// Every literal becomes a first-class node: node indices 0..2M+1 are
// reserved up front, and for every variable v an inverter edge 2v -> 2v+1
// is added unconditionally, whether or not the file ever references the
// inverted literal. Literal 0, AIGER's reserved constant-false, is marked
// PI with label 0. A latch's state literal is marked both PI (it feeds
// combinational logic as a value already known) and PO (its next-state
// literal drives it) — this package does not optimize across the
// sequential boundary; latches are simply combinational cut points.
//
// Parsing fails at the first malformed record with one of the sentinel
// errors declared in this package, wrapped by fmt.Errorf with a short
// description of the offending record or literal.
package aiger
