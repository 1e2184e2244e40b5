package backend

import (
	"encoding/json"

	"clinigoal/models"
)

// ListEnrollments fetches every enrollment (admin view).
func (c *Client) ListEnrollments() ([]models.Enrollment, error) {
	resp, err := c.http.R().Get("/enrollments")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	enrollments := []models.Enrollment{}
	if err := decodeList(resp.Body(), "enrollments", &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// ListUserEnrollments fetches a single learner's enrollments.
func (c *Client) ListUserEnrollments(userID string) ([]models.Enrollment, error) {
	resp, err := c.http.R().Get("/enrollments/user/" + userID)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	enrollments := []models.Enrollment{}
	if err := decodeList(resp.Body(), "enrollments", &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// CreateEnrollment records a new enrollment. The backend answers with the
// conventional {success, message} envelope; a declared failure is surfaced
// as an HTTP-kind error even on a 200.
func (c *Client) CreateEnrollment(enrollment models.Enrollment) error {
	resp, err := c.http.R().SetBody(enrollment).Post("/enrollments")
	if err := check(resp, err); err != nil {
		return err
	}
	var env envelope
	if jsonErr := json.Unmarshal(resp.Body(), &env); jsonErr == nil {
		if env.Success != nil && !*env.Success {
			msg := env.Message
			if msg == "" {
				msg = "enrollment was not saved"
			}
			return &APIError{Kind: KindHTTP, Status: resp.StatusCode(), Message: msg}
		}
	}
	return nil
}

// UpdateEnrollmentStatus issues the status transition PUT. There is no
// concurrency token; concurrent admins race with last write wins.
func (c *Client) UpdateEnrollmentStatus(id, status string) error {
	resp, err := c.http.R().
		SetBody(map[string]string{"status": status}).
		Put("/enrollments/" + id)
	return check(resp, err)
}
