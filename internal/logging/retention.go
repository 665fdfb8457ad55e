package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// PruneDailyLogs removes LogFilePattern files in dir last modified more than
// retentionDays ago. current is never removed. A retentionDays of 0 disables
// pruning.
func PruneDailyLogs(logger *slog.Logger, retentionDays int, dir, current string) {
	if retentionDays <= 0 || dir == "" {
		return
	}
	matches, err := filepath.Glob(filepath.Join(dir, LogFilePattern))
	if err != nil {
		return
	}
	keep := absPath(current)
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	for _, path := range matches {
		path = absPath(path)
		if path == keep {
			continue
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			WarnWithContext(logger, "log retention remove failed", "log_retention_failed",
				String("path", path),
				Error(err),
				String(FieldErrorHint, "check permissions on paths.log_dir"),
				String(FieldImpact, "old log file remains on disk"),
			)
			continue
		}
		if logger != nil {
			logger.Debug("old log removed",
				String("path", path),
				Int("retention_days", retentionDays),
				String(FieldEventType, "log_pruned"),
			)
		}
	}
}

func absPath(path string) string {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
