package jobs

import (
	"log"
	"time"

	"gamestore/database"
	"gamestore/services"
)

// StartPaymentExpiryScheduler periodically fails pending payments whose
// deadline has passed.
func StartPaymentExpiryScheduler() {
	ticker := time.NewTicker(1 * time.Minute)
	go func() {
		for {
			<-ticker.C
			if _, err := services.ExpirePendingPayments(database.DB, time.Now()); err != nil {
				log.Printf("❌ error expiring payments: %v", err)
			}
		}
	}()
}
