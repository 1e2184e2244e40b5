package backend

import "clinigoal/models"

// AuthResponse is the login/register payload: a bearer token plus the
// user record to persist locally.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login exchanges credentials for a token and user record.
func (c *Client) Login(email, password string) (AuthResponse, error) {
	var auth AuthResponse
	resp, err := c.http.R().
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/users/login")
	if err := check(resp, err); err != nil {
		return auth, err
	}
	if err := decodeObject(resp.Body(), "data", &auth); err != nil {
		return auth, err
	}
	return auth, nil
}

// Register creates a learner account.
func (c *Client) Register(name, email, password string) (AuthResponse, error) {
	var auth AuthResponse
	resp, err := c.http.R().
		SetBody(map[string]string{"name": name, "email": email, "password": password}).
		Post("/users/register")
	if err := check(resp, err); err != nil {
		return auth, err
	}
	if err := decodeObject(resp.Body(), "data", &auth); err != nil {
		return auth, err
	}
	return auth, nil
}

// ForgotPassword triggers the backend's reset flow.
func (c *Client) ForgotPassword(email string) error {
	resp, err := c.http.R().
		SetBody(map[string]string{"email": email}).
		Post("/users/forgot-password")
	return check(resp, err)
}

// ListUsers fetches all registered users (admin view).
func (c *Client) ListUsers() ([]models.User, error) {
	resp, err := c.http.R().Get("/users")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := decodeList(resp.Body(), "users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user and their data.
func (c *Client) DeleteUser(id string) error {
	return check(c.http.R().Delete("/users/" + id))
}
