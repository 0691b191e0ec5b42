// Package qm implements Quine-McCluskey minimization of boolean truth
// tables: canonicalization, prime implicant generation (with don't-care
// absorption), essential-implicant extraction, and an exhaustive minimum
// cover search over the residual chart.
//
// The package is stateless: every exported function takes its inputs as
// values and returns values or an error. Only ParseTri, Canonicalize and
// Minimize (which returns Canonicalize's errors) can fail; the rest of
// the pipeline is infallible once given a canonical table.
package qm
