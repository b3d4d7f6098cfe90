// Package models defines the core domain models for BillWise.
//
// # Models
//
//   - Split: a bill-division instance with a tip-inclusive total and a list
//     of participants, persisted as one whole JSON document
//   - Participant: one person's share and payment state within a split
//   - User: a registered account; its ID becomes the split's payerId
//
// The remaining types are the JSON request/response shapes of the HTTP API.
//
// # Design notes
//
// Splits reference their owner by ID string rather than by pointer, and
// participants are embedded values inside the split document. The split is
// read and written as a unit; there is no per-participant row to join.
package models
