// Package pipeline runs the full subtitle transformation for one file:
// parse, normalize, resolve timing, inject style, and write ASS output.
package pipeline
