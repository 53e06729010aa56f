// Package gateway is the typed HTTP client for the archive API. The
// sync engines use it for every remote mutation; it is the only place
// that knows the wire endpoints.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"arsipku/internal/model"
	"arsipku/internal/service"
)

var (
	// ErrNotConfigured is returned when the client has no base URL or
	// credential.
	ErrNotConfigured = errors.New("gateway not configured")
	// ErrUnauthorized is returned for a rejected credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict is returned when the server rejects a record as a
	// duplicate.
	ErrConflict = errors.New("duplicate record")
	// ErrNotFound is returned when the record does not exist remotely.
	ErrNotFound = errors.New("record not found")
)

// Client is a client for the archive gateway API.
type Client struct {
	BaseURL string
	APIKey  string
	client  *http.Client
}

// NewClient creates a new gateway client. APIKey may be a session
// token or the static service key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		APIKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Session is an authenticated session minted by SignIn.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// SignIn exchanges the admin credential for a session token and
// stores it on the client.
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	if c.BaseURL == "" {
		return Session{}, ErrNotConfigured
	}

	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return Session{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/auth/signin", bytes.NewBuffer(payload))
	if err != nil {
		return Session{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := checkStatus(resp, http.StatusOK); err != nil {
		return Session{}, err
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return Session{}, fmt.Errorf("failed to decode response: %w", err)
	}
	c.APIKey = session.Token
	return session, nil
}

// SignOut invalidates the current session token.
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/signout", nil, nil, http.StatusNoContent); err != nil {
		return err
	}
	c.APIKey = ""
	return nil
}

// ListArchives fetches every archive page by page.
func (c *Client) ListArchives(ctx context.Context) ([]model.Archive, error) {
	var all []model.Archive
	for page := 1; ; page++ {
		var result service.SearchResult
		path := "/api/archives?page=" + strconv.Itoa(page)
		if err := c.do(ctx, http.MethodGet, path, nil, &result, http.StatusOK); err != nil {
			return nil, err
		}
		all = append(all, result.Items...)
		if page >= result.TotalPages {
			return all, nil
		}
	}
}

// SearchArchives runs one filtered, paginated listing remotely.
func (c *Client) SearchArchives(ctx context.Context, rawQuery string, page int) (service.SearchResult, error) {
	var result service.SearchResult
	path := "/api/archives?q=" + url.QueryEscape(rawQuery) + "&page=" + strconv.Itoa(page)
	err := c.do(ctx, http.MethodGet, path, nil, &result, http.StatusOK)
	return result, err
}

// CreateArchive inserts a record and returns the server copy.
func (c *Client) CreateArchive(ctx context.Context, draft service.ArchiveDraft) (model.Archive, error) {
	var created model.Archive
	err := c.do(ctx, http.MethodPost, "/api/archives", draft, &created, http.StatusCreated)
	return created, err
}

// UpdateArchive replaces a record and returns the server copy.
func (c *Client) UpdateArchive(ctx context.Context, id string, draft service.ArchiveDraft) (model.Archive, error) {
	var updated model.Archive
	err := c.do(ctx, http.MethodPut, "/api/archives/"+url.PathEscape(id), draft, &updated, http.StatusOK)
	return updated, err
}

// DeleteArchive removes a record.
func (c *Client) DeleteArchive(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/archives/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

// ListClassifications fetches the full classification scheme.
func (c *Client) ListClassifications(ctx context.Context) ([]model.Classification, error) {
	var items []model.Classification
	err := c.do(ctx, http.MethodGet, "/api/classifications", nil, &items, http.StatusOK)
	return items, err
}

// CreateClassification inserts an entry and returns the server copy.
func (c *Client) CreateClassification(ctx context.Context, draft service.ClassificationDraft) (model.Classification, error) {
	var created model.Classification
	err := c.do(ctx, http.MethodPost, "/api/classifications", draft, &created, http.StatusCreated)
	return created, err
}

// UpdateClassification replaces an entry and returns the server copy.
func (c *Client) UpdateClassification(ctx context.Context, id string, draft service.ClassificationDraft) (model.Classification, error) {
	var updated model.Classification
	err := c.do(ctx, http.MethodPut, "/api/classifications/"+url.PathEscape(id), draft, &updated, http.StatusOK)
	return updated, err
}

// DeleteClassification removes an entry.
func (c *Client) DeleteClassification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/classifications/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

// RemoveFile deletes a stored attachment.
func (c *Client) RemoveFile(ctx context.Context, storedPath string) error {
	return c.do(ctx, http.MethodDelete, "/api/files/"+url.PathEscape(storedPath), nil, nil, http.StatusNoContent)
}

// do runs one JSON round trip. A nil out skips decoding.
func (c *Client) do(ctx context.Context, method, path string, payload, out any, wantStatus int) error {
	if c.BaseURL == "" || c.APIKey == "" {
		return ErrNotConfigured
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := checkStatus(resp, wantStatus); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// checkStatus maps error statuses to sentinels, keeping the server's
// message in the wrapped error.
func checkStatus(resp *http.Response, want int) error {
	if resp.StatusCode == want {
		return nil
	}

	raw, _ := io.ReadAll(resp.Body)
	msg := strings.TrimSpace(string(raw))
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		msg = body.Error
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	}
	return fmt.Errorf("bad status %d: %s", resp.StatusCode, msg)
}
