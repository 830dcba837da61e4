// Package suspend implements the pipeline as cooperating stage goroutines
// joined by single-slot channel handoffs: one goroutine each for the source,
// the two filters, and the expansion, driven by a single top-level consumer.
//
// There is exactly one consumer, so values arrive in the same order every
// synchronous strategy produces them: ascending span order, then ascending
// factor order per value. The context passed through the stage builders
// exists only for teardown; when the consumer stops early, cancellation
// unblocks every pending handoff so no stage goroutine leaks.
package suspend
