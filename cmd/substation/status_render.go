package main

import (
	"github.com/jedib0t/go-pretty/v6/text"

	"substation/internal/queue"
)

func formatStatus(status queue.Status, colorize bool) string {
	label := string(status)
	if !colorize {
		return label
	}
	switch status {
	case queue.StatusCompleted:
		return text.FgGreen.Sprint(label)
	case queue.StatusFailed:
		return text.FgRed.Sprint(label)
	case queue.StatusProbing, queue.StatusStyling:
		return text.FgYellow.Sprint(label)
	default:
		return label
	}
}

func formatHealthy(ready bool, colorize bool) string {
	if ready {
		if colorize {
			return text.FgGreen.Sprint("ok")
		}
		return "ok"
	}
	if colorize {
		return text.FgRed.Sprint("unavailable")
	}
	return "unavailable"
}
