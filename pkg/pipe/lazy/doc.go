// Package lazy implements the pipeline as a chain of composed iter.Seq
// stage transformers with a single-pass terminal fold.
//
// Nothing is computed until Fold pulls: each produced value traverses the
// whole stage chain before the next one is requested, so the pipeline is
// depth-first per item rather than batch per stage.
//
// Key operations:
// - Span: source stage yielding the inclusive range
// - Reject: filter stage dropping values matching a predicate
// - Expand: expansion stage replacing values with their prime factors
// - Fold: terminal reduction into the (sum, count) pair
package lazy
