// Package rtlil emits the mapped network as RTLIL text: one wire per
// PI/PO symbol bus, one $ni$<idx> stub wire per LUT output and per PI
// fan-in bit, and one $lut cell per LUT carrying its truth table as an
// RTLIL \LUT parameter.
//
// Each LUT's truth table is built by iterating its 2^k input assignments
// in index order (bit i of the index selects the i-th declared input),
// evaluating the LUT with package luteval for each, and reversing the
// resulting bit sequence so the emitted parameter string is MSB-first,
// matching RTLIL's convention for constant bit vectors.
package rtlil
