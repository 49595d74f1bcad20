package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/taskdeck/tui-go/internal/session"
)

const (
	// requestTimeout is the fixed upper bound per request. Exceeding it
	// fails the call like any other transport error; there is no retry.
	requestTimeout = 10 * time.Second

	// genericErrorMessage is the fallback when neither the server nor the
	// transport provides anything usable
	genericErrorMessage = "something went wrong, please try again"
)

// Client is the single egress point for the remote task API. It attaches the
// bearer token from the session store to every request and reacts to any 401
// by tearing down the session, regardless of which endpoint produced it.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	store          *session.Store
	onUnauthorized func()
}

// NewClient creates a client for the API at baseURL, reading credentials
// from store
func NewClient(baseURL string, store *session.Store) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		store: store,
	}
}

// OnUnauthorized registers fn to be called whenever any request comes back
// 401, after the session store has been cleared. The caller decides how to
// navigate; the client never touches the view layer.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// APIError is a normalized request failure. Message is the server's
// structured message when one exists, otherwise the transport message,
// otherwise a generic fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// errorBody is the shape of structured failure responses
type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// do executes a request and unmarshals a successful response into result.
// body, if non-nil, is marshaled as the JSON request body.
func (c *Client) do(method, path string, body interface{}, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: normalizeTransport(err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: normalizeTransport(err)}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.store.Logout()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return newAPIError(resp.StatusCode, respBody)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &APIError{Status: resp.StatusCode, Message: genericErrorMessage}
		}
	}

	return nil
}

// newAPIError builds a normalized error from a failure response, preferring
// the server's structured message
func newAPIError(status int, body []byte) *APIError {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return &APIError{Status: status, Message: parsed.Message}
	}
	return &APIError{Status: status, Message: fmt.Sprintf("request failed with status %d", status)}
}

// normalizeTransport turns a transport-level failure into a message-bearing
// string so callers never see raw exception shapes
func normalizeTransport(err error) string {
	if err == nil {
		return genericErrorMessage
	}
	return err.Error()
}
