// Package hyperop implements the hyperoperations above exponentiation —
// tetration and pentation — on arbitrary-precision integers.
//
// All functions are pure and allocate their results; arguments are never
// mutated. Values grow hyper-exponentially: Tetration(2, 5) already has
// nearly twenty thousand decimal digits, and Pentation(2, 4) is far beyond
// anything representable. Callers are expected to keep heights small.
package hyperop
