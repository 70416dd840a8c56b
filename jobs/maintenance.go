package jobs

import (
	"time"

	tasks "gamestore/task"
)

// StartMaintenanceScheduler runs housekeeping once a day.
func StartMaintenanceScheduler() {
	ticker := time.NewTicker(24 * time.Hour)
	go func() {
		for {
			<-ticker.C
			tasks.PruneAdminLogs()
		}
	}()
}
