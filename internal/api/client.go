package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// CredentialSource hands the client the current bearer token and is
// told to forget it when the backend says the session is gone.
type CredentialSource interface {
	Token() string
	Clear() error
}

// Client talks to the admin REST backend. Every request carries the
// bearer token from the credential source; a 401 clears it in one
// place so no screen has to remember to.
type Client struct {
	baseURL string
	creds   CredentialSource
	http    *http.Client
}

func NewClient(baseURL string, creds CredentialSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
	Message    string          `json:"message"`
}

// Pagination is the list-response page summary. The backend names the
// total count differently per resource (totalItems, totalProducts, ...),
// so decoding normalizes whichever key is present into TotalItems.
type Pagination struct {
	TotalPages int
	TotalItems int
}

func (p *Pagination) UnmarshalJSON(b []byte) error {
	var aux struct {
		TotalPages    int `json:"totalPages"`
		TotalItems    int `json:"totalItems"`
		TotalProducts int `json:"totalProducts"`
		TotalOrders   int `json:"totalOrders"`
		TotalUsers    int `json:"totalUsers"`
		TotalReviews  int `json:"totalReviews"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	p.TotalPages = aux.TotalPages
	for _, n := range []int{aux.TotalItems, aux.TotalProducts, aux.TotalOrders, aux.TotalUsers, aux.TotalReviews} {
		if n != 0 {
			p.TotalItems = n
			break
		}
	}
	return nil
}

// ListParams is the query shape of a list fetch.
type ListParams struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
	Filters   map[string]string
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	q.Set("admin", "true")
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
		q.Set("sortOrder", p.SortOrder)
	}
	for k, v := range p.Filters {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*envelope, error) {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: "failed to build request", cause: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		msg := "failed to reach the server"
		if ctx.Err() != nil {
			msg = "request cancelled"
		}
		return nil, &Error{Kind: KindNetwork, Message: msg, cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: "failed to read response", cause: err}
	}

	var env envelope
	// Error bodies are JSON too, but a proxy can hand back HTML; a
	// decode failure must not mask the HTTP status below.
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.classify(resp.StatusCode, env.Message)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "request failed"
		}
		return nil, &Error{Kind: KindApplication, StatusCode: resp.StatusCode, Message: msg}
	}
	return &env, nil
}

func (c *Client) classify(status int, message string) *Error {
	switch status {
	case http.StatusUnauthorized:
		// Session is gone: forget the stored token so the next
		// command lands on the login path instead of looping.
		_ = c.creds.Clear()
		return &Error{Kind: KindUnauthorized, StatusCode: status, Message: "session expired, please log in again"}
	case http.StatusForbidden:
		return &Error{Kind: KindForbidden, StatusCode: status, Message: "access denied"}
	case http.StatusBadRequest:
		if message == "" {
			message = "invalid request"
		}
		return &Error{Kind: KindValidation, StatusCode: status, Message: message}
	default:
		if message == "" {
			message = fmt.Sprintf("server returned status %d", status)
		}
		return &Error{Kind: KindServer, StatusCode: status, Message: message}
	}
}

// ListPage is the decoded result of one list fetch.
type ListPage[T any] struct {
	Items      []T
	Pagination *Pagination
}

// List fetches one page of a resource collection.
func List[T any](ctx context.Context, c *Client, resource string, params ListParams) (ListPage[T], error) {
	env, err := c.do(ctx, http.MethodGet, resource, params.values(), nil, "")
	if err != nil {
		return ListPage[T]{}, err
	}
	var items []T
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return ListPage[T]{}, &Error{Kind: KindApplication, Message: "malformed list payload", cause: err}
	}
	return ListPage[T]{Items: items, Pagination: env.Pagination}, nil
}

// Get fetches an arbitrary path (stats endpoints and similar
// non-collection resources).
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	env, err := c.do(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, &Error{Kind: KindApplication, Message: "malformed payload", cause: err}
	}
	return out, nil
}

// GetOne fetches a single record by id.
func GetOne[T any](ctx context.Context, c *Client, resource, id string) (T, error) {
	var out T
	env, err := c.do(ctx, http.MethodGet, resource+"/"+url.PathEscape(id), nil, nil, "")
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, &Error{Kind: KindApplication, Message: "malformed record payload", cause: err}
	}
	return out, nil
}

// Create posts a JSON payload and decodes the created record.
func Create[T any](ctx context.Context, c *Client, resource string, payload any) (T, error) {
	return send[T](ctx, c, http.MethodPost, resource, payload)
}

// Update puts a partial JSON payload for one record.
func Update[T any](ctx context.Context, c *Client, resource, id string, payload any) (T, error) {
	return send[T](ctx, c, http.MethodPut, resource+"/"+url.PathEscape(id), payload)
}

func send[T any](ctx context.Context, c *Client, method, path string, payload any) (T, error) {
	var out T
	body, err := json.Marshal(payload)
	if err != nil {
		return out, &Error{Kind: KindApplication, Message: "failed to encode payload", cause: err}
	}
	env, err := c.do(ctx, method, path, nil, bytes.NewReader(body), "application/json")
	if err != nil {
		return out, err
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return out, &Error{Kind: KindApplication, Message: "malformed record payload", cause: err}
		}
	}
	return out, nil
}

// Delete removes one record and returns the backend's message.
func (c *Client) Delete(ctx context.Context, resource, id string) (string, error) {
	env, err := c.do(ctx, http.MethodDelete, resource+"/"+url.PathEscape(id), nil, nil, "")
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// Upload sends a multipart form with one file attached, for create and
// edit flows that carry an image alongside the record fields.
func Upload[T any](ctx context.Context, c *Client, method, path string, fields map[string]string, fileField, filePath string) (T, error) {
	var out T

	f, err := os.Open(filePath)
	if err != nil {
		return out, &Error{Kind: KindValidation, Message: fmt.Sprintf("cannot open %s", filePath), cause: err}
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return out, &Error{Kind: KindApplication, Message: "failed to encode form", cause: err}
		}
	}
	part, err := w.CreateFormFile(fileField, filepath.Base(filePath))
	if err != nil {
		return out, &Error{Kind: KindApplication, Message: "failed to encode form", cause: err}
	}
	if _, err := io.Copy(part, f); err != nil {
		return out, &Error{Kind: KindApplication, Message: "failed to read file", cause: err}
	}
	if err := w.Close(); err != nil {
		return out, &Error{Kind: KindApplication, Message: "failed to encode form", cause: err}
	}

	env, err := c.do(ctx, method, path, nil, &buf, w.FormDataContentType())
	if err != nil {
		return out, err
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return out, &Error{Kind: KindApplication, Message: "malformed record payload", cause: err}
		}
	}
	return out, nil
}
