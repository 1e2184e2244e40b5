package monitor

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinigoal/models"
)

// fakeSource scripts the backend for monitor tests.
type fakeSource struct {
	mu          sync.Mutex
	enrollments []models.Enrollment
	listErr     error
	updateErr   error
	updates     []string
}

func (f *fakeSource) ListEnrollments() ([]models.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Enrollment, len(f.enrollments))
	copy(out, f.enrollments)
	return out, nil
}

func (f *fakeSource) UpdateEnrollmentStatus(id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, id+":"+status)
	for i := range f.enrollments {
		if f.enrollments[i].ID == id {
			f.enrollments[i].Status = status
		}
	}
	return nil
}

func (f *fakeSource) set(enrollments []models.Enrollment) {
	f.mu.Lock()
	f.enrollments = enrollments
	f.mu.Unlock()
}

func pending(id string) models.Enrollment {
	return models.Enrollment{ID: id, Status: models.StatusPending}
}

func TestFirstFetchSeedsBaselineWithoutNewFlags(t *testing.T) {
	source := &fakeSource{enrollments: []models.Enrollment{pending("a"), pending("b")}}
	m := New(source, time.Hour, 8*time.Second)

	require.NoError(t, m.Refresh())

	rows, lastErr := m.Snapshot()
	require.Len(t, rows, 2)
	assert.Empty(t, lastErr)
	for _, row := range rows {
		assert.False(t, row.IsNew)
	}
}

func TestNewcomerFlaggedUntilWindowExpires(t *testing.T) {
	source := &fakeSource{enrollments: []models.Enrollment{pending("a")}}
	m := New(source, time.Hour, 8*time.Second)

	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	current := base
	m.Now = func() time.Time { return current }

	require.NoError(t, m.Refresh())
	source.set([]models.Enrollment{pending("a"), pending("b")})
	require.NoError(t, m.Refresh())

	rows, _ := m.Snapshot()
	flags := map[string]bool{}
	for _, row := range rows {
		flags[row.ID] = row.IsNew
	}
	assert.False(t, flags["a"])
	assert.True(t, flags["b"])

	current = base.Add(9 * time.Second)
	rows, _ = m.Snapshot()
	for _, row := range rows {
		assert.False(t, row.IsNew)
	}
}

func TestFetchFailureKeepsRowsAndSurfacesError(t *testing.T) {
	source := &fakeSource{enrollments: []models.Enrollment{pending("a")}}
	m := New(source, time.Hour, 8*time.Second)
	require.NoError(t, m.Refresh())

	source.mu.Lock()
	source.listErr = errors.New("connection refused")
	source.mu.Unlock()

	require.Error(t, m.Refresh())

	rows, lastErr := m.Snapshot()
	assert.Len(t, rows, 1)
	assert.Contains(t, lastErr, "connection refused")

	m.DismissError()
	_, lastErr = m.Snapshot()
	assert.Empty(t, lastErr)
}

func TestTransitionFailureLeavesStateUntouched(t *testing.T) {
	source := &fakeSource{enrollments: []models.Enrollment{pending("a")}}
	m := New(source, time.Hour, 8*time.Second)
	require.NoError(t, m.Refresh())

	source.mu.Lock()
	source.updateErr = errors.New("boom")
	source.mu.Unlock()

	err := m.Approve("a")
	require.Error(t, err)

	rows, lastErr := m.Snapshot()
	assert.Equal(t, models.StatusPending, rows[0].Status)
	assert.Empty(t, lastErr)
}

func TestTransitionRefetchesAfterSuccessfulPut(t *testing.T) {
	source := &fakeSource{enrollments: []models.Enrollment{pending("a")}}
	m := New(source, time.Hour, 8*time.Second)
	require.NoError(t, m.Refresh())

	require.NoError(t, m.Approve("a"))

	rows, _ := m.Snapshot()
	assert.Equal(t, models.StatusApproved, rows[0].Status)
	assert.Equal(t, []string{"a:approved"}, source.updates)
}

func TestTransitionRejectsInvalidMoves(t *testing.T) {
	source := &fakeSource{enrollments: []models.Enrollment{
		{ID: "a", Status: models.StatusApproved},
	}}
	m := New(source, time.Hour, 8*time.Second)
	require.NoError(t, m.Refresh())

	// Approved can only go back to pending.
	require.Error(t, m.Reject("a"))
	assert.Empty(t, source.updates)

	require.NoError(t, m.Revoke("a"))
	rows, _ := m.Snapshot()
	assert.Equal(t, models.StatusPending, rows[0].Status)
}

func TestApproveIsIdempotent(t *testing.T) {
	source := &fakeSource{enrollments: []models.Enrollment{pending("a")}}
	m := New(source, time.Hour, 8*time.Second)
	require.NoError(t, m.Refresh())

	require.NoError(t, m.Approve("a"))
	require.NoError(t, m.Approve("a"))

	rows, _ := m.Snapshot()
	assert.Equal(t, models.StatusApproved, rows[0].Status)
	assert.Equal(t, []string{"a:approved", "a:approved"}, source.updates)
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	m := New(&fakeSource{}, time.Hour, 8*time.Second)
	assert.Error(t, m.Transition("a", "archived"))
}

func TestActionsOfferedPerStatus(t *testing.T) {
	source := &fakeSource{enrollments: []models.Enrollment{
		{ID: "p", Status: models.StatusPending},
		{ID: "a", Status: models.StatusApproved},
		{ID: "r", Status: models.StatusRejected},
	}}
	m := New(source, time.Hour, 8*time.Second)
	require.NoError(t, m.Refresh())

	rows, _ := m.Snapshot()
	actions := map[string][]string{}
	for _, row := range rows {
		actions[row.ID] = row.Actions
	}
	assert.Equal(t, []string{"approve", "reject"}, actions["p"])
	assert.Equal(t, []string{"revoke"}, actions["a"])
	assert.Equal(t, []string{"revoke"}, actions["r"])
}

func TestRefreshAfterStopIsDiscarded(t *testing.T) {
	source := &fakeSource{enrollments: []models.Enrollment{pending("a")}}
	m := New(source, time.Hour, 8*time.Second)

	handle := m.Start()
	// Let the initial fetch land before stopping.
	require.Eventually(t, func() bool {
		rows, _ := m.Snapshot()
		return len(rows) == 1
	}, time.Second, 5*time.Millisecond)
	handle.Stop()

	source.set([]models.Enrollment{pending("a"), pending("b")})
	require.NoError(t, m.Refresh())

	rows, _ := m.Snapshot()
	assert.Len(t, rows, 1)
}
