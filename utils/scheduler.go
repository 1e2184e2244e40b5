package utils

import (
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"clinigoal/backend"
	"clinigoal/models"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// BackendHealth is the last known state of the platform backend, refreshed
// by the minutely probe and shown on the admin overview.
type BackendHealth struct {
	mu        sync.Mutex
	healthy   bool
	checkedAt time.Time
	message   string
}

// Status returns the last probe outcome.
func (h *BackendHealth) Status() (bool, time.Time, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.healthy, h.checkedAt, h.message
}

func (h *BackendHealth) record(healthy bool, message string) {
	h.mu.Lock()
	h.healthy = healthy
	h.checkedAt = time.Now()
	h.message = message
	h.mu.Unlock()
}

// ReviewCache is the admin moderation view's copy of the review list,
// refreshed in the background so the tab opens instantly.
type ReviewCache struct {
	mu      sync.Mutex
	reviews []models.Review
	fresh   bool
}

// Reviews returns the cached list and whether a successful refresh has
// happened yet.
func (rc *ReviewCache) Reviews() ([]models.Review, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.reviews, rc.fresh
}

// Set replaces the cached list.
func (rc *ReviewCache) Set(reviews []models.Review) {
	rc.mu.Lock()
	rc.reviews = reviews
	rc.fresh = true
	rc.mu.Unlock()
}

// probeHealth hits GET /health and records the result.
func probeHealth(api *backend.Client, health *BackendHealth) {
	if err := api.Health(); err != nil {
		health.record(false, err.Error())
		logScheduler("Backend health probe failed: " + err.Error())
		return
	}
	health.record(true, "ok")
}

// refreshReviews re-fetches the moderation cache; failures keep the
// previous copy.
func refreshReviews(api *backend.Client, cache *ReviewCache) {
	reviews, err := api.ListReviews()
	if err != nil {
		logScheduler("Review cache refresh failed: " + err.Error())
		return
	}
	cache.Set(reviews)
}

// InitializeSchedulers starts the background jobs: a minutely backend
// health probe and a review cache refresh every five minutes. The monitor's
// seconds-level polling is ticker-based and owned by its view; cron only
// carries the coarse jobs.
func InitializeSchedulers(api *backend.Client, health *BackendHealth, cache *ReviewCache) *cron.Cron {
	logScheduler("Initializing background schedulers...")

	c := cron.New()
	c.AddFunc("@every 1m", func() { probeHealth(api, health) })
	c.AddFunc("@every 5m", func() { refreshReviews(api, cache) })
	c.Start()

	// Seed both immediately so the first overview render has data.
	go probeHealth(api, health)
	go refreshReviews(api, cache)

	logScheduler("All schedulers initialized successfully")
	return c
}
