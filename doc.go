// Package ackermann evaluates the two-argument Ackermann function A(m, n)
// on arbitrary-precision integers.
//
// Two equivalent strategies are provided. Recursive follows the recurrence
// with genuine call recursion and inherits the call stack as its hard
// resource ceiling — for m >= 4 with nonzero n it will exhaust the stack,
// which is the documented behavior, not a defect. Iterative simulates the
// same recursion with an explicit heap-backed stack of pending m-values and
// trades the call-stack ceiling for ordinary memory growth.
//
// Both strategies produce identical results wherever both terminate.
package ackermann
