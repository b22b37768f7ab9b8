// Package queue persists the subtitle batch queue in SQLite. Items move
// through a linear lifecycle (pending, probing, probed, styling, completed
// or failed) driven by the workflow manager.
package queue
