// Package organizer runs organization passes over a folder and reverses them.
//
// A pass enumerates the folder's direct entries, classifies each file,
// plans a collision-free destination, moves the file (or simulates the move
// in dry-run mode), and records every executed move in the folder's history
// ledger under a per-pass batch ID. Undo replays the most recent batch in
// last-moved-first order. Failures are contained at single-file granularity;
// one bad file never aborts a pass, and every pass ends with a summary.
package organizer
