// Package styling is the workflow stage that runs the subtitle pipeline for
// probed queue items and writes the styled ASS output.
package styling
