// Package probe reads video geometry with ffprobe. The styling margins are
// scaled from the probed width and height.
package probe
