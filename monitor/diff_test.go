package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clinigoal/models"
)

func TestDiffIDsFindsOnlyNewcomers(t *testing.T) {
	prev := map[string]struct{}{"a": {}, "b": {}}
	curr := []models.Enrollment{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	fresh := DiffIDs(prev, curr)

	assert.Equal(t, map[string]struct{}{"c": {}}, fresh)
}

func TestDiffIDsEmptyPrevFlagsEverything(t *testing.T) {
	curr := []models.Enrollment{{ID: "a"}, {ID: "b"}}

	fresh := DiffIDs(map[string]struct{}{}, curr)

	assert.Len(t, fresh, 2)
}

func TestDiffIDsRemovalsAreNotNew(t *testing.T) {
	prev := map[string]struct{}{"a": {}, "b": {}}
	curr := []models.Enrollment{{ID: "a"}}

	fresh := DiffIDs(prev, curr)

	assert.Empty(t, fresh)
}
