package jobs

import (
	"context"
	"log"
	"time"

	"github.com/Juantrevi/Backend-Learning-Management-System/repository"
)

// CartPurgeJob drops cart lines that have sat untouched longer than
// MaxAge. Abandoned guest sessions never get cleaned up otherwise.
type CartPurgeJob struct {
	Store  repository.Store
	MaxAge time.Duration
}

func NewCartPurgeJob(store repository.Store) *CartPurgeJob {
	return &CartPurgeJob{Store: store, MaxAge: 30 * 24 * time.Hour}
}

func (j *CartPurgeJob) Run() {
	log.Println("Running job: PurgeStaleCarts...")

	cutoff := time.Now().Add(-j.MaxAge)
	purged, err := j.Store.Carts().PurgeOlderThan(context.Background(), cutoff)
	if err != nil {
		log.Printf("Error purging stale carts: %v", err)
		return
	}
	if purged == 0 {
		log.Println("No stale cart lines found.")
		return
	}
	log.Printf("Purged %d stale cart line(s).", purged)
}
