// Package pick models operator pick sessions and the scans recorded in them.
//
// A Pick is one working session against one order. An order may have many
// picks over its lifetime; progress is computed from the scans of all of
// them. Scans are immutable events. They are only removed when the pick
// that recorded them is reset.
//
// Pick status transitions:
//
//	(create) ──> Active ──markPartial──> Partial
//	   any   ──markPartial──> Partial
//	   any   ──reset────────> Pending
//	   any   ──last set picked──> Completed
//
// Scans are accepted in every status, Completed included.
package pick
