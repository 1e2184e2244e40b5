package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinigoal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	return s
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "68a0000000000000000000aa",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("not-the-backend-key"))
	require.NoError(t, err)
	return signed
}

func TestTokenRoundTrip(t *testing.T) {
	s := openTestStore(t)

	_, ok := s.Token()
	assert.False(t, ok)

	require.NoError(t, s.SetToken("abc"))
	token, ok := s.Token()
	require.True(t, ok)
	assert.Equal(t, "abc", token)
}

func TestTokenExpiry(t *testing.T) {
	s := openTestStore(t)

	// No token at all reads as expired.
	assert.True(t, s.TokenExpired())

	require.NoError(t, s.SetToken("not-a-jwt"))
	assert.True(t, s.TokenExpired())

	require.NoError(t, s.SetToken(signedToken(t, time.Now().Add(-time.Hour))))
	assert.True(t, s.TokenExpired())

	require.NoError(t, s.SetToken(signedToken(t, time.Now().Add(time.Hour))))
	assert.False(t, s.TokenExpired())
}

func TestUserRoundTrip(t *testing.T) {
	s := openTestStore(t)

	_, ok := s.User()
	assert.False(t, ok)

	require.NoError(t, s.SetUser(models.User{ID: "68a0000000000000000000aa", Name: "Jane"}))
	user, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "Jane", user.Name)
}

func TestMalformedStoredUserReadsAsAbsent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.set(keyUser, "{not json"))
	_, ok := s.User()
	assert.False(t, ok)

	// A syntactically fine record with a bad id is also rejected.
	require.NoError(t, s.set(keyUser, `{"_id":"short","name":"Jane"}`))
	_, ok = s.User()
	assert.False(t, ok)
}

func TestSectionProgressIsMonotonicPerCourse(t *testing.T) {
	s := openTestStore(t)
	courseA := "68a0000000000000000000bb"
	courseB := "68a0000000000000000000cc"

	assert.Equal(t, models.SectionProgress{}, s.Progress(courseA))

	progress, err := s.MarkSectionComplete(courseA, models.SectionVideos)
	require.NoError(t, err)
	assert.True(t, progress.Videos)

	progress, err = s.MarkSectionComplete(courseA, models.SectionQuiz)
	require.NoError(t, err)
	assert.True(t, progress.Videos)
	assert.True(t, progress.Quiz)
	assert.False(t, progress.AllComplete())

	// Courses do not share progress.
	assert.Equal(t, models.SectionProgress{}, s.Progress(courseB))

	_, err = s.MarkSectionComplete(courseA, models.SectionNotes)
	require.NoError(t, err)
	_, err = s.MarkSectionComplete(courseA, models.SectionAssignments)
	require.NoError(t, err)
	assert.True(t, s.Progress(courseA).AllComplete())
}

func TestMalformedProgressDegradesToIncomplete(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.set(keyProgress, "]["))

	assert.Equal(t, models.SectionProgress{}, s.Progress("68a0000000000000000000bb"))
}

func TestClearSessionRemovesEverything(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SetToken("abc"))
	require.NoError(t, s.SetUser(models.User{ID: "68a0000000000000000000aa"}))
	_, err := s.MarkSectionComplete("68a0000000000000000000bb", models.SectionVideos)
	require.NoError(t, err)

	require.NoError(t, s.ClearSession())

	_, ok := s.Token()
	assert.False(t, ok)
	_, ok = s.User()
	assert.False(t, ok)
	assert.Equal(t, models.SectionProgress{}, s.Progress("68a0000000000000000000bb"))
}
