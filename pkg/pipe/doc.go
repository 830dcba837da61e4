// Package pipe defines the contract shared by every pipeline strategy: the
// numeric predicates, the prime factorizer, the inclusive input span, and
// the terminal (sum, count) pair.
//
// Strategy packages (callback, lazy, cursor, staged, suspend) each realize
// the same Source -> Filter -> Filter -> Expand -> Reduce pipeline under a
// different control-flow discipline. For any span they must produce
// identical Result values; package harness enforces that.
package pipe
