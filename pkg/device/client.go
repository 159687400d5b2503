package device

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Session is an open WebDriver session against one automation server.
// Create it with [NewSession] and release it with [Close]; the server
// holds the device exclusively while the session lives.
type Session struct {
	http    *http.Client
	baseURL string
	id      string
}

// NewSession opens a session on the automation server at serverURL with
// the given capability set. Transient connection failures are retried
// before giving up.
func NewSession(ctx context.Context, serverURL string, caps Capabilities) (*Session, error) {
	s := &Session{
		http:    newHTTPClient(),
		baseURL: strings.TrimSuffix(serverURL, "/"),
	}

	payload := map[string]any{
		"capabilities": map[string]any{"alwaysMatch": caps},
	}
	var resp struct {
		Value struct {
			SessionID string `json:"sessionId"`
		} `json:"value"`
	}
	err := retry(ctx, func() error {
		return s.post(ctx, "/session", payload, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	if resp.Value.SessionID == "" {
		return nil, fmt.Errorf("create session: server returned no session id")
	}
	s.id = resp.Value.SessionID
	return s, nil
}

// ID returns the server-assigned session identifier.
func (s *Session) ID() string { return s.id }

// PerformActions submits a W3C action chain and blocks until the server
// has executed it.
func (s *Session) PerformActions(ctx context.Context, actions []Action) error {
	payload := map[string]any{"actions": actions}
	if err := s.post(ctx, "/session/"+s.id+"/actions", payload, nil); err != nil {
		return fmt.Errorf("perform actions: %w", err)
	}
	return nil
}

// Close deletes the session on the server, releasing the device.
func (s *Session) Close(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.baseURL+"/session/"+s.id, nil)
	if err != nil {
		return err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete session: %w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	return checkStatus(resp.StatusCode)
}

func (s *Session) post(ctx context.Context, path string, payload, v any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := s.http.Do(req)
	if err != nil {
		return &RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		// Surface the server's error message when it sends one.
		if msg := webdriverError(resp.Body); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	if v != nil {
		return json.NewDecoder(resp.Body).Decode(v)
	}
	return nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return &RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

// webdriverError extracts the error message from a WebDriver error
// response body, or returns "" if the body is not one.
func webdriverError(r io.Reader) string {
	var resp struct {
		Value struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		} `json:"value"`
	}
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return ""
	}
	if resp.Value.Message != "" {
		return resp.Value.Message
	}
	return resp.Value.Error
}
