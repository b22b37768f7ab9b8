// Package style builds ASS style headers. Margins are derived from the
// target video geometry and one Default style carries every dialogue line.
package style
