package tui

import "fmt"

// FormatBytes returns a human-readable size (B, KiB, MiB, ...).
func FormatBytes(bytes int64) string {
	const unit = 1024
	neg := ""
	if bytes < 0 {
		neg = "-"
		bytes = -bytes
	}
	if bytes < unit {
		return fmt.Sprintf("%s%d B", neg, bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	return fmt.Sprintf("%s%.1f %s", neg, float64(bytes)/float64(div), suffixes[exp])
}
