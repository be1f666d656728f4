// Package planner computes destination directories for categorized files and
// resolves filename collisions deterministically.
//
// Flat mode targets <root>/<category>; date mode appends the file's
// last-modification year and full month name. Collisions are resolved by
// ascending integer probing ("name (1).ext", "name (2).ext", ...), never by
// directory iteration order, so repeated runs on identical inputs produce
// identical names.
package planner
