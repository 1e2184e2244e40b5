package store

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"clinigoal/models"
)

const (
	keyToken    = "token"
	keyUser     = "user"
	keyProgress = "completedSections"
)

// Token returns the stored bearer token, if any.
func (s *Store) Token() (string, bool) {
	token, ok := s.get(keyToken)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// SetToken persists the bearer token.
func (s *Store) SetToken(token string) error {
	return s.set(keyToken, token)
}

// TokenExpired reports whether the stored token carries an exp claim in the
// past. The signature is not checked; the signing key belongs to the
// backend and this is only a local hint to prompt a re-login before a
// request bounces. A missing or unparseable token reads as expired.
func (s *Store) TokenExpired() bool {
	token, ok := s.Token()
	if !ok {
		return true
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	// A token without an exp claim is treated as non-expiring.
	return !claims.VerifyExpiresAt(time.Now().Unix(), false)
}

// User returns the stored learner record. A malformed or incomplete stored
// value reads as absent rather than a partially-valid user.
func (s *Store) User() (models.User, bool) {
	raw, ok := s.get(keyUser)
	if !ok {
		return models.User{}, false
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return models.User{}, false
	}
	if !models.IsValidID(user.ID) {
		return models.User{}, false
	}
	return user, true
}

// SetUser persists the learner record.
func (s *Store) SetUser(user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.set(keyUser, string(raw))
}

// progressMap is courseID -> four-flag completion record, stored under a
// single key.
type progressMap map[string]models.SectionProgress

func (s *Store) progressMap() progressMap {
	raw, ok := s.get(keyProgress)
	if !ok {
		return progressMap{}
	}
	parsed := progressMap{}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		// Malformed stored progress degrades to everything-incomplete.
		return progressMap{}
	}
	return parsed
}

// Progress returns the completion record for a course. Absent reads as all
// false.
func (s *Store) Progress(courseID string) models.SectionProgress {
	return s.progressMap()[courseID]
}

// MarkSectionComplete sets one section flag true for a course and persists
// the record. Flags are monotonic; there is no way to unset one short of
// ClearSession.
func (s *Store) MarkSectionComplete(courseID, section string) (models.SectionProgress, error) {
	all := s.progressMap()
	progress := all[courseID]
	switch section {
	case models.SectionVideos:
		progress.Videos = true
	case models.SectionNotes:
		progress.Notes = true
	case models.SectionAssignments:
		progress.Assignments = true
	case models.SectionQuiz:
		progress.Quiz = true
	}
	all[courseID] = progress

	raw, err := json.Marshal(all)
	if err != nil {
		return progress, err
	}
	return progress, s.set(keyProgress, string(raw))
}

// ClearSession removes token, user and progress. This is the logout path.
func (s *Store) ClearSession() error {
	for _, key := range []string{keyToken, keyUser, keyProgress} {
		if err := s.delete(key); err != nil {
			return err
		}
	}
	return nil
}
