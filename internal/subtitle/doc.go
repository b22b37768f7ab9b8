// Package subtitle implements the cue data model plus parsing and
// serialization for the SubRip (.srt) and Advanced SubStation Alpha (.ass)
// subtitle formats.
package subtitle
