package backend

import (
	"encoding/json"

	"clinigoal/models"
)

// Stats fetches the overview counters.
func (c *Client) Stats() (models.Stats, error) {
	var stats models.Stats
	resp, err := c.http.R().Get("/admin/stats")
	if err := check(resp, err); err != nil {
		return stats, err
	}
	if err := decodeObject(resp.Body(), "stats", &stats); err != nil {
		return stats, err
	}
	return stats, nil
}

// Analytics fetches the raw analytics payload. It is passed through to the
// caller untouched; shaping it into charts is not the dashboard's job.
func (c *Client) Analytics() (models.Analytics, error) {
	resp, err := c.http.R().Get("/admin/analytics")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	analytics := models.Analytics{}
	if err := json.Unmarshal(resp.Body(), &analytics); err != nil {
		return nil, &APIError{Kind: KindDecode, Message: err.Error()}
	}
	return analytics, nil
}
