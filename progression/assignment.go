package progression

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AssignmentSubmission is the acknowledgement for a submitted assignment.
// Nothing is persisted beyond the success flag; real storage is a backend
// concern that is stubbed here with a short delay.
type AssignmentSubmission struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	FileSize    int64     `json:"fileSize"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// submissionDelay simulates the upload round-trip.
const submissionDelay = 1500 * time.Millisecond

// ErrNoFileSelected rejects a submission without a chosen file.
var ErrNoFileSelected = errors.New("please select a file to upload")

// SubmitAssignment accepts a file selection and returns a submission
// receipt after the simulated delay. The caller marks the assignments
// section complete on success.
func SubmitAssignment(fileName string, fileSize int64) (AssignmentSubmission, error) {
	if fileName == "" {
		return AssignmentSubmission{}, ErrNoFileSelected
	}

	time.Sleep(submissionDelay)

	return AssignmentSubmission{
		ID:          uuid.NewString(),
		FileName:    fileName,
		FileSize:    fileSize,
		SubmittedAt: time.Now(),
	}, nil
}
