// Package staged implements the pipeline with virtual dispatch over an
// ordered list of interface-typed stages sharing one mutable buffer.
//
// This is the batch counterpart of the per-element strategies: every stage
// fully processes the whole buffer before the next stage begins, trading
// intermediate memory for a uniform, easily extended per-stage interface.
package staged
