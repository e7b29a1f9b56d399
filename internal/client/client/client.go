// Package client implements the HTTP API client used by the CLI. Every
// call returns the decoded response or an error mapped from the server's
// error taxonomy.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/server/models"
)

// UploadRequest mirrors the body of POST /files. Data carries
// base64-encoded content and stays empty for folders.
type UploadRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId,omitempty"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data,omitempty"`
}

// Status mirrors the GET /status response.
type Status struct {
	DB    bool `json:"db"`
	Redis bool `json:"redis"`
}

// Stats mirrors the GET /stats response.
type Stats struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}

// Client talks to the filevault HTTP API. The session token, once set,
// accompanies every request in the X-Token header.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) Token() string { return c.token }

// apiError converts a non-2xx response into the shared error taxonomy so
// callers can use errors.Is / errors.As the same way as on the server.
func apiError(status int, body []byte) error {
	var eb struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &eb)

	switch status {
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusBadRequest:
		if eb.Error == "Already exist" {
			return common.ErrorAlreadyExists
		}
		return common.NewValidationError(eb.Error)
	default:
		return fmt.Errorf("server returned status %d: %s", status, eb.Error)
	}
}

func (c *Client) do(ctx context.Context, method, path string, headers map[string]string, body any) (*http.Response, []byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.TokenHeaderName, c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, data, nil
}

// doJSON performs the request and decodes a 2xx response body into out.
func (c *Client) doJSON(ctx context.Context, method, path string, headers map[string]string, body, out any) error {
	resp, data, err := c.do(ctx, method, path, headers, body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return apiError(resp.StatusCode, data)
	}
	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

func (c *Client) Status(ctx context.Context) (*Status, error) {
	var s Status
	if err := c.doJSON(ctx, "GET", "/status", nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	if err := c.doJSON(ctx, "GET", "/stats", nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) Register(ctx context.Context, email, password string) (*models.User, error) {
	var u models.User
	body := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, "POST", "/users", nil, body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Connect logs in with Basic credentials and remembers the session token.
func (c *Client) Connect(ctx context.Context, email, password string) (string, error) {
	auth := "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))

	var body struct {
		Token string `json:"token"`
	}
	headers := map[string]string{"Authorization": auth}
	if err := c.doJSON(ctx, "GET", "/connect", headers, nil, &body); err != nil {
		return "", err
	}
	c.token = body.Token
	return body.Token, nil
}

// Disconnect revokes the session and forgets the token.
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.doJSON(ctx, "GET", "/disconnect", nil, nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, "GET", "/users/me", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Upload(ctx context.Context, req *UploadRequest) (*models.File, error) {
	var f models.File
	if err := c.doJSON(ctx, "POST", "/files", nil, req, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *Client) GetFile(ctx context.Context, id string) (*models.File, error) {
	var f models.File
	if err := c.doJSON(ctx, "GET", "/files/"+url.PathEscape(id), nil, nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *Client) ListFiles(ctx context.Context, parentID string, page int) ([]models.File, error) {
	q := url.Values{}
	if parentID != "" {
		q.Set("parentId", parentID)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	path := "/files"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var entries []models.File
	if err := c.doJSON(ctx, "GET", path, nil, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) Publish(ctx context.Context, id string) (*models.File, error) {
	return c.setVisibility(ctx, id, "publish")
}

func (c *Client) Unpublish(ctx context.Context, id string) (*models.File, error) {
	return c.setVisibility(ctx, id, "unpublish")
}

func (c *Client) setVisibility(ctx context.Context, id, action string) (*models.File, error) {
	var f models.File
	path := "/files/" + url.PathEscape(id) + "/" + action
	if err := c.doJSON(ctx, "PUT", path, nil, nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Download fetches the entry's content, optionally a thumbnail width
// (500, 250 or 100). It returns the bytes and the served content type.
func (c *Client) Download(ctx context.Context, id string, size int) ([]byte, string, error) {
	path := "/files/" + url.PathEscape(id) + "/data"
	if size > 0 {
		path += "?size=" + strconv.Itoa(size)
	}

	resp, data, err := c.do(ctx, "GET", path, nil, nil)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode >= 300 {
		return nil, "", apiError(resp.StatusCode, data)
	}
	return data, resp.Header.Get("Content-Type"), nil
}
