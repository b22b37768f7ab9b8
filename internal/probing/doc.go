// Package probing is the workflow stage that resolves target video geometry
// for queued subtitle files.
package probing
