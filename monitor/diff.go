package monitor

import "clinigoal/models"

// DiffIDs returns the ids present in curr but absent from prev. It is a pure
// function so the "new enrollment" highlighting can be tested without a
// running poller.
func DiffIDs(prev map[string]struct{}, curr []models.Enrollment) map[string]struct{} {
	fresh := map[string]struct{}{}
	for _, enrollment := range curr {
		if _, ok := prev[enrollment.ID]; !ok {
			fresh[enrollment.ID] = struct{}{}
		}
	}
	return fresh
}

// idSet collects the ids of a fetched enrollment list.
func idSet(enrollments []models.Enrollment) map[string]struct{} {
	ids := make(map[string]struct{}, len(enrollments))
	for _, enrollment := range enrollments {
		ids[enrollment.ID] = struct{}{}
	}
	return ids
}
