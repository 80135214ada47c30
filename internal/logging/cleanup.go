package logging

import (
	"log/slog"
	"time"

	"github.com/taskhubapp/taskhub-backend/internal/models"
	"gorm.io/gorm"
)

// StartCleanup runs a daily goroutine that deletes system_logs older than the
// configured retention window.
func StartCleanup(db *gorm.DB, retentionDays int, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, 0, -retentionDays)
				result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
				if result.Error != nil {
					slog.Error("system log cleanup failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("system logs pruned", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
