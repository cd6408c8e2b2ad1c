package service

import (
	"fmt"
	"strings"
)

const (
	kib = 1024
	mib = 1024 * kib
	gib = 1024 * mib
)

func formatBytes(v float64) string {
	switch {
	case v < kib:
		return fmt.Sprintf("%.2f B", v)
	case v < mib:
		return fmt.Sprintf("%.2f KB", v/kib)
	case v < gib:
		return fmt.Sprintf("%.2f MB", v/mib)
	default:
		return fmt.Sprintf("%.2f GB", v/gib)
	}
}

func formatUptime(seconds int64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if len(parts) == 0 {
		return "just booted"
	}
	return strings.Join(parts, " ")
}

func loadVerdict(load1 float64) string {
	switch {
	case load1 < 1:
		return "running smoothly"
	case load1 < 2:
		return "load elevated"
	default:
		return "overloaded"
	}
}

func containerStateIcon(state string) string {
	switch state {
	case "running":
		return "🟢"
	case "exited":
		return "🔴"
	case "paused":
		return "🟡"
	case "created":
		return "⚪"
	default:
		return "⚫"
	}
}

func appStatusIcon(status string) string {
	switch status {
	case "Running":
		return "🟢"
	case "Stopped":
		return "🔴"
	case "Installing":
		return "🔄"
	case "Error":
		return "❌"
	default:
		return "⚫"
	}
}

// shortImage trims a registry path like ghcr.io/acme/web:1.2 down to the
// final segment, capped so one container never floods the reply.
func shortImage(image string) string {
	if i := strings.LastIndex(image, "/"); i >= 0 {
		image = image[i+1:]
	}
	if len(image) > 20 {
		image = image[:20]
	}
	return image
}
