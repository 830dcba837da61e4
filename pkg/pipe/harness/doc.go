// Package harness drives every pipeline strategy over one span and checks
// that the produced (sum, count) pairs agree.
//
// A divergence is a correctness defect, never a performance difference: the
// returned error names the offending strategy and the field (sum or count)
// that diverged, and no recovery is attempted. Each strategy invocation is
// independent and starts from a clean slate; reports carry a unique run id
// and the wall time of the run.
package harness
