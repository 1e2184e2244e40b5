package backend

import "clinigoal/models"

// ListReviews fetches all course reviews.
func (c *Client) ListReviews() ([]models.Review, error) {
	resp, err := c.http.R().Get("/reviews")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	if err := decodeList(resp.Body(), "reviews", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview submits a learner review.
func (c *Client) CreateReview(review models.Review) (models.Review, error) {
	var created models.Review
	resp, err := c.http.R().SetBody(review).Post("/reviews")
	if err := check(resp, err); err != nil {
		return created, err
	}
	if err := decodeObject(resp.Body(), "review", &created); err != nil {
		return created, err
	}
	return created, nil
}

// DeleteReview removes a review by id (admin moderation).
func (c *Client) DeleteReview(id string) error {
	return check(c.http.R().Delete("/reviews/" + id))
}
