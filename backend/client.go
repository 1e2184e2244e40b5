package backend

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Error kinds, matching the dashboard's failure taxonomy: the request never
// produced a response, the backend answered with a >=400 status, or the
// response body could not be decoded.
const (
	KindNetwork = "network"
	KindHTTP    = "http"
	KindDecode  = "decode"
)

// APIError is any failure talking to the platform backend.
type APIError struct {
	Kind    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Kind == KindHTTP {
		return fmt.Sprintf("backend: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend: %s error: %s", e.Kind, e.Message)
}

// IsNetwork reports whether err is a no-response failure.
func IsNetwork(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Kind == KindNetwork
}

// TokenProvider returns the current bearer token, or "" when logged out.
// An absent token is not an error until the backend rejects the call.
type TokenProvider func() string

// Client talks to the course platform REST backend. One instance is built
// at startup from config and injected everywhere; nothing re-derives the
// base URL.
type Client struct {
	http *resty.Client
}

// New builds a backend client. The base path is <baseURL>/api.
func New(baseURL string, timeout time.Duration, tokens TokenProvider) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/") + "/api").
		SetTimeout(timeout)

	if tokens != nil {
		httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if token := tokens(); token != "" {
				req.SetHeader("Authorization", "Bearer "+token)
			}
			return nil
		})
	}

	return &Client{http: httpClient}
}

// envelope is the conventional backend error/confirmation body.
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// check classifies the outcome of a resty call. A nil return means the
// response is a 2xx and its body may be decoded.
func check(resp *resty.Response, err error) error {
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	if resp.StatusCode() >= 400 {
		msg := resp.Status()
		var env envelope
		if jsonErr := json.Unmarshal(resp.Body(), &env); jsonErr == nil {
			if env.Message != "" {
				msg = env.Message
			} else if env.Error != "" {
				msg = env.Error
			}
		}
		return &APIError{Kind: KindHTTP, Status: resp.StatusCode(), Message: msg}
	}
	return nil
}

// decodeList unmarshals a backend list response into out. The backend is
// inconsistent across deployments: some endpoints return a bare JSON array,
// others wrap it as {"<key>": [...]}. Both are accepted.
func decodeList(body []byte, key string, out interface{}) error {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(body, out); err != nil {
			return &APIError{Kind: KindDecode, Message: err.Error()}
		}
		return nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return &APIError{Kind: KindDecode, Message: err.Error()}
	}
	raw, ok := wrapper[key]
	if !ok {
		// Empty object or missing key reads as an empty list.
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Kind: KindDecode, Message: err.Error()}
	}
	return nil
}

// decodeObject unmarshals a single-entity response, tolerating both a bare
// object and a {"<key>": {...}} wrapper.
func decodeObject(body []byte, key string, out interface{}) error {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return &APIError{Kind: KindDecode, Message: err.Error()}
	}
	if raw, ok := wrapper[key]; ok && strings.HasPrefix(strings.TrimSpace(string(raw)), "{") {
		if err := json.Unmarshal(raw, out); err != nil {
			return &APIError{Kind: KindDecode, Message: err.Error()}
		}
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &APIError{Kind: KindDecode, Message: err.Error()}
	}
	return nil
}

// Health probes GET /health.
func (c *Client) Health() error {
	return check(c.http.R().Get("/health"))
}
