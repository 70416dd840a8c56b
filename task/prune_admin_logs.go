package tasks

import (
	"log"
	"time"

	"gamestore/database"
	"gamestore/models"
)

const adminLogRetention = 90 * 24 * time.Hour

// PruneAdminLogs drops audit rows past the retention window.
func PruneAdminLogs() {
	cutoff := time.Now().Add(-adminLogRetention)
	result := database.DB.
		Unscoped().
		Where("created_at < ?", cutoff).
		Delete(&models.AdminLog{})

	if result.Error != nil {
		log.Println("❌ Failed to prune admin logs:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("✅ Pruned %d admin logs older than %s\n", result.RowsAffected, adminLogRetention)
	}
}
