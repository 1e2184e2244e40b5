package backend

import (
	"io"

	"clinigoal/models"
)

// ListVideos fetches all uploaded videos.
func (c *Client) ListVideos() ([]models.Video, error) {
	resp, err := c.http.R().Get("/videos")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	videos := []models.Video{}
	if err := decodeList(resp.Body(), "videos", &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// UploadVideo posts a multipart video upload. The file itself is streamed
// through; storage is the backend's concern.
func (c *Client) UploadVideo(title, courseName, filename string, file io.Reader) (models.Video, error) {
	var video models.Video
	resp, err := c.http.R().
		SetFormData(map[string]string{"title": title, "courseName": courseName}).
		SetFileReader("video", filename, file).
		Post("/videos/upload")
	if err := check(resp, err); err != nil {
		return video, err
	}
	if err := decodeObject(resp.Body(), "video", &video); err != nil {
		return video, err
	}
	return video, nil
}

// UpdateVideo updates a video's title and course name.
func (c *Client) UpdateVideo(id, title, courseName string) error {
	resp, err := c.http.R().
		SetBody(map[string]string{"title": title, "courseName": courseName}).
		Put("/videos/" + id)
	return check(resp, err)
}

// DeleteVideo deletes a video by id.
func (c *Client) DeleteVideo(id string) error {
	return check(c.http.R().Delete("/videos/" + id))
}

// ListNotes fetches all uploaded notes.
func (c *Client) ListNotes() ([]models.Note, error) {
	resp, err := c.http.R().Get("/notes")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	notes := []models.Note{}
	if err := decodeList(resp.Body(), "notes", &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// UploadNote posts a multipart note upload.
func (c *Client) UploadNote(title, courseName, filename string, file io.Reader) (models.Note, error) {
	var note models.Note
	resp, err := c.http.R().
		SetFormData(map[string]string{"title": title, "courseName": courseName}).
		SetFileReader("note", filename, file).
		Post("/notes/upload")
	if err := check(resp, err); err != nil {
		return note, err
	}
	if err := decodeObject(resp.Body(), "note", &note); err != nil {
		return note, err
	}
	return note, nil
}

// UpdateNote updates a note's title and course name.
func (c *Client) UpdateNote(id, title, courseName string) error {
	resp, err := c.http.R().
		SetBody(map[string]string{"title": title, "courseName": courseName}).
		Put("/notes/" + id)
	return check(resp, err)
}

// DeleteNote deletes a note by id.
func (c *Client) DeleteNote(id string) error {
	return check(c.http.R().Delete("/notes/" + id))
}

// ListQuizzes fetches all quizzes.
func (c *Client) ListQuizzes() ([]models.Quiz, error) {
	resp, err := c.http.R().Get("/quizzes")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	quizzes := []models.Quiz{}
	if err := decodeList(resp.Body(), "quizzes", &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

// CreateQuiz creates a quiz.
func (c *Client) CreateQuiz(quiz models.Quiz) (models.Quiz, error) {
	var created models.Quiz
	resp, err := c.http.R().SetBody(quiz).Post("/quizzes")
	if err := check(resp, err); err != nil {
		return created, err
	}
	if err := decodeObject(resp.Body(), "quiz", &created); err != nil {
		return created, err
	}
	return created, nil
}

// UpdateQuiz updates a quiz by id.
func (c *Client) UpdateQuiz(id string, quiz models.Quiz) error {
	resp, err := c.http.R().SetBody(quiz).Put("/quizzes/" + id)
	return check(resp, err)
}

// DeleteQuiz deletes a quiz by id.
func (c *Client) DeleteQuiz(id string) error {
	return check(c.http.R().Delete("/quizzes/" + id))
}
