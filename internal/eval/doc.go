// Package eval is a reference materializer for expression trees.
//
// It specializes a tree against a Binding (symbol name to float64) and
// computes scalar or small-vector results. Real consumers substitute
// richer evaluation contexts (cells, quadrature points); this one exists
// so the construction layer has an executable consumer for tests and the
// CLI.
//
// Evaluation is recursive, synchronous, and single-threaded. The null
// sentinel evaluates to a skipped result: it contributes nothing, and a
// skipped child skips the whole application, mirroring how a term
// eliminated at construction would simply never have been evaluated.
package eval
