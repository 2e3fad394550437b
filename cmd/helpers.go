package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
)

// optionalTime parses the -d flag common to reports: empty means now.
func optionalTime(s string) (time.Time, subcommands.ExitStatus) {
	if s == "" {
		return time.Now(), subcommands.ExitSuccess
	}
	on, err := parseTime(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return time.Time{}, subcommands.ExitUsageError
	}
	return on, subcommands.ExitSuccess
}

// parseTime parses a date (2025-01-15, 2025-1-15) or a full RFC3339 timestamp, in local time.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-1-2", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q want format %q or RFC3339: %w", s, "2006-01-02", err)
	}
	return t, nil
}

// isTimestamp reports whether s is a full RFC3339 timestamp rather than a plain date.
func isTimestamp(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}
