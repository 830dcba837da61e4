// Package callback implements the pipeline with direct invocation: the span
// loop, both filter checks, and the factorization loop run strictly nested,
// and every factor reaches the accumulator through one handler call. No
// intermediate sequence ever materializes.
//
// This is the baseline the other strategies are measured against: plain
// synchronous control transfer with nothing between producer and consumer.
package callback
