package monitor

import (
	"fmt"
	"log"
	"sync"
	"time"

	"clinigoal/models"
)

// Source is the slice of the backend client the monitor needs.
type Source interface {
	ListEnrollments() ([]models.Enrollment, error)
	UpdateEnrollmentStatus(id, status string) error
}

// Row is one enrollment as the approvals table renders it: the record, a
// short-lived "new" highlight, and the transitions currently offered.
type Row struct {
	models.Enrollment
	IsNew   bool     `json:"isNew"`
	Actions []string `json:"actions"`
}

// Monitor polls the enrollment list, highlights newly arrived records for a
// fixed window, and applies admin status transitions. List state only ever
// changes via a successful fetch; transitions are never applied
// optimistically.
type Monitor struct {
	source     Source
	interval   time.Duration
	flagWindow time.Duration

	// Now is swappable for tests.
	Now func() time.Time

	mu          sync.Mutex
	enrollments []models.Enrollment
	seen        map[string]struct{}
	newUntil    map[string]time.Time
	seeded      bool
	lastErr     string
	stopped     bool
}

// New builds a monitor around the given source.
func New(source Source, interval, flagWindow time.Duration) *Monitor {
	return &Monitor{
		source:     source,
		interval:   interval,
		flagWindow: flagWindow,
		Now:        time.Now,
		seen:       map[string]struct{}{},
		newUntil:   map[string]time.Time{},
	}
}

// Handle tears down a running poll loop. Stop is safe to call more than
// once and blocks until the loop goroutine has exited.
type Handle struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// Stop cancels the polling loop.
func (h *Handle) Stop() {
	h.once.Do(func() { close(h.stop) })
	<-h.done
}

// Start fetches once to seed the baseline, then polls at the configured
// interval until the returned handle is stopped. The owning view's teardown
// path must invoke Stop; timers are never left to the garbage collector.
func (m *Monitor) Start() *Handle {
	handle := &Handle{stop: make(chan struct{}), done: make(chan struct{})}

	m.mu.Lock()
	m.stopped = false
	m.mu.Unlock()

	go func() {
		defer close(handle.done)

		if err := m.Refresh(); err != nil {
			log.Printf("[APPROVAL-MONITOR] initial fetch failed: %v", err)
		}

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-handle.stop:
				m.mu.Lock()
				m.stopped = true
				m.mu.Unlock()
				return
			case <-ticker.C:
				// A fetch failure surfaces a dismissible error and the
				// loop keeps going.
				if err := m.Refresh(); err != nil {
					log.Printf("[APPROVAL-MONITOR] poll failed: %v", err)
				}
			}
		}
	}()

	return handle
}

// Refresh performs one enrollment list fetch and folds it into the
// snapshot. An empty list is a valid snapshot, not an error. Results that
// resolve after teardown are discarded.
func (m *Monitor) Refresh() error {
	enrollments, err := m.source.ListEnrollments()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return nil
	}
	if err != nil {
		m.lastErr = err.Error()
		return err
	}

	now := m.Now()
	if m.seeded {
		for id := range DiffIDs(m.seen, enrollments) {
			m.newUntil[id] = now.Add(m.flagWindow)
		}
	}
	// Nothing is "new" on the first snapshot; it only seeds the baseline.
	m.seen = idSet(enrollments)
	m.seeded = true
	m.enrollments = enrollments
	m.lastErr = ""
	return nil
}

// Snapshot returns the current table rows plus the last fetch error, if an
// undismissed one exists.
func (m *Monitor) Snapshot() ([]Row, string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.Now()
	rows := make([]Row, 0, len(m.enrollments))
	for _, enrollment := range m.enrollments {
		until, flagged := m.newUntil[enrollment.ID]
		if flagged && !now.Before(until) {
			delete(m.newUntil, enrollment.ID)
			flagged = false
		}
		rows = append(rows, Row{
			Enrollment: enrollment,
			IsNew:      flagged,
			Actions:    actionsFor(enrollment.Status),
		})
	}
	return rows, m.lastErr
}

// DismissError clears the surfaced fetch error (the banner's dismiss
// control).
func (m *Monitor) DismissError() {
	m.mu.Lock()
	m.lastErr = ""
	m.mu.Unlock()
}

// Transition applies an admin status change: a single PUT by id followed by
// an unconditional re-fetch. On PUT failure local state is left untouched
// and the error is returned for a blocking alert. A re-fetch failure after
// a successful PUT is recorded like any poll failure, not returned.
func (m *Monitor) Transition(id, status string) error {
	switch status {
	case models.StatusApproved, models.StatusRejected, models.StatusPending:
	default:
		return fmt.Errorf("unknown enrollment status %q", status)
	}

	m.mu.Lock()
	for _, enrollment := range m.enrollments {
		if enrollment.ID == id && !models.ValidTransition(enrollment.Status, status) {
			m.mu.Unlock()
			return fmt.Errorf("cannot move enrollment from %q to %q", enrollment.Status, status)
		}
	}
	m.mu.Unlock()

	if err := m.source.UpdateEnrollmentStatus(id, status); err != nil {
		return err
	}
	if err := m.Refresh(); err != nil {
		log.Printf("[APPROVAL-MONITOR] re-fetch after transition failed: %v", err)
	}
	return nil
}

// Approve moves an enrollment to approved.
func (m *Monitor) Approve(id string) error { return m.Transition(id, models.StatusApproved) }

// Reject moves an enrollment to rejected.
func (m *Monitor) Reject(id string) error { return m.Transition(id, models.StatusRejected) }

// Revoke moves an approved or rejected enrollment back to pending. The same
// action reopens a rejected record.
func (m *Monitor) Revoke(id string) error { return m.Transition(id, models.StatusPending) }

// actionsFor lists the transitions the table offers for a status: pending
// rows get approve/reject, anything else gets revoke.
func actionsFor(status string) []string {
	if status == models.StatusPending {
		return []string{"approve", "reject"}
	}
	return []string{"revoke"}
}
