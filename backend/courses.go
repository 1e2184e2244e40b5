package backend

import "clinigoal/models"

// ListCourses fetches all courses.
func (c *Client) ListCourses() ([]models.Course, error) {
	resp, err := c.http.R().Get("/courses")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	courses := []models.Course{}
	if err := decodeList(resp.Body(), "courses", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// CreateCourse creates a new course and returns the stored record.
func (c *Client) CreateCourse(course models.Course) (models.Course, error) {
	var created models.Course
	resp, err := c.http.R().SetBody(course).Post("/courses")
	if err := check(resp, err); err != nil {
		return created, err
	}
	if err := decodeObject(resp.Body(), "course", &created); err != nil {
		return created, err
	}
	return created, nil
}

// UpdateCourse updates an existing course by id.
func (c *Client) UpdateCourse(id string, course models.Course) (models.Course, error) {
	var updated models.Course
	resp, err := c.http.R().SetBody(course).Put("/courses/" + id)
	if err := check(resp, err); err != nil {
		return updated, err
	}
	if err := decodeObject(resp.Body(), "course", &updated); err != nil {
		return updated, err
	}
	return updated, nil
}

// DeleteCourse deletes a course by id.
func (c *Client) DeleteCourse(id string) error {
	return check(c.http.R().Delete("/courses/" + id))
}
