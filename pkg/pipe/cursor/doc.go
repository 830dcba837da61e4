// Package cursor implements the pipeline with an explicit external
// iteration protocol: a resumable Factors cursor per surviving value,
// advanced by the driving loop until exhaustion.
//
// All mutable factorization state (the unfactored remainder and the trial
// divisor) stays encapsulated in the cursor; the caller only ever sees the
// emitted factor or the exhaustion signal.
package cursor
