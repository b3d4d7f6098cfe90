// Package ledger holds the pure split computation and reconciliation logic:
// building a candidate split from form input, validating it before anything is
// persisted, and applying payment events to a persisted split.
//
// Everything here is a pure function over models values. No I/O, no clock, no
// randomness; payment tokens are generated by the caller. Monetary values are
// float64 with an absolute tolerance of 0.01 currency units, matching the
// persisted document format.
package ledger
