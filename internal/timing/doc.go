// Package timing repairs cue timing so rendered subtitles never overlap and
// every cue keeps a positive display duration.
package timing
