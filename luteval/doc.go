// Package luteval implements the LUT evaluator (component G): given the
// network a LUT was cut from, build the Boolean expression tree that LUT
// realizes and return a function from input values to the LUT's output
// value.
//
// The tree is built once, by walking backward from the LUT's output
// through every node in its cut, replacing each unresolved literal with an
// And or Inverter node according to how many direct ancestors it has (two
// for an AND gate, one for an inverter — every non-input node in a cut is
// one or the other). The returned closure then performs a fresh
// substitution of the LUT's declared inputs into that fixed tree and folds
// it down to a single bool on every call.
package luteval
