// Package normalize repairs cue text: encoding artifacts, quote variants,
// line-break collapsing, and advertisement removal. Timestamps are never
// touched here.
package normalize
