// Package history persists the capacity-bounded record of executed moves
// that powers undo.
//
// One ledger file lives in each organized folder. Loading is tolerant:
// missing or corrupt state degrades to an empty ledger so broken history can
// never block a pass. Persisting rewrites the whole file atomically via a
// temp file and rename. Entries carry the batch ID of the pass that produced
// them, which is what lets undo reverse exactly one pass.
package history
