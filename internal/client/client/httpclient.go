package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/craftconnect/internal/common"
	"github.com/dmitrijs2005/craftconnect/internal/logging"
	"github.com/google/uuid"
)

// TokenSource yields the bearer token for the next request. An empty string
// means no token is held.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string { return f() }

// UnauthorizedHandler is called when an authenticated request gets a 401.
type UnauthorizedHandler func(ctx context.Context)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

func WithUnauthorizedHandler(h UnauthorizedHandler) Option {
	return func(c *HTTPClient) { c.onUnauthorized = h }
}

// HTTPClient implements Client over HTTP/JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu             sync.RWMutex
	tokens         TokenSource
	onUnauthorized UnauthorizedHandler
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the backend at baseURL. A trailing slash
// is dropped; an empty baseURL falls back to common.DefaultAPIBaseURL.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	if baseURL == "" {
		baseURL = common.DefaultAPIBaseURL
	}
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Bind sets the token source and the 401 handler. Either may be nil.
func (c *HTTPClient) Bind(ts TokenSource, h UnauthorizedHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = ts
	c.onUnauthorized = h
}

func (c *HTTPClient) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

func (c *HTTPClient) reportUnauthorized(ctx context.Context) {
	c.mu.RLock()
	h := c.onUnauthorized
	c.mu.RUnlock()
	if h != nil {
		h(ctx)
	}
}

// Do performs r and decodes a successful JSON body into out. out may be nil.
func (c *HTTPClient) Do(ctx context.Context, r Request, out any) error {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	log := c.log.With("request_id", requestID, "method", req.Method, "path", r.Path)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return &NetworkError{Method: req.Method, Path: r.Path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "reading response failed", "status", resp.StatusCode, "error", err)
		return &NetworkError{Method: req.Method, Path: r.Path, Err: err}
	}
	log.Debug(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// A 401 on login or registration means bad credentials, not an
		// expired session.
		if !r.SkipAuth {
			log.Info(ctx, "backend rejected the session token")
			c.reportUnauthorized(ctx)
		}
		return &AuthError{Detail: errorDetail(resp.StatusCode, body)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &APIError{Status: resp.StatusCode, Detail: errorDetail(resp.StatusCode, body)}
	}

	return decodeBody(resp.StatusCode, body, out)
}

func (c *HTTPClient) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	target := c.baseURL + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	var (
		body        io.Reader
		contentType = "application/json"
	)
	switch {
	case r.File != nil:
		buf, ct, err := encodeMultipart(r.File)
		if err != nil {
			return nil, err
		}
		body, contentType = buf, ct
	case r.Body != nil:
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	if !r.SkipAuth {
		if t := c.token(); t != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerValue(t))
		}
	}
	return req, nil
}

func encodeMultipart(f *FilePart) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	field := f.FieldName
	if field == "" {
		field = "file"
	}
	part, err := w.CreateFormFile(field, f.FileName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, f.Content); err != nil {
		return nil, "", fmt.Errorf("failed to read upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

func decodeBody(status int, body []byte, out any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if out == nil {
		if !json.Valid(body) {
			return &MalformedResponseError{Status: status, Err: errors.New("invalid JSON")}
		}
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &MalformedResponseError{Status: status, Err: err}
	}
	return nil
}

// errorBody covers the error shapes the backend produces: FastAPI's
// {"detail": "..."} and {"detail": [{"msg": "..."}]}, plus plain
// {"error": "..."} and {"message": "..."}.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func errorDetail(status int, body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if d := detailText(eb.Detail); d != "" {
			return d
		}
		if eb.Error != "" {
			return eb.Error
		}
		if eb.Message != "" {
			return eb.Message
		}
	}
	return fmt.Sprintf("API request failed: %d", status)
}

func detailText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, item := range list {
			if item.Msg != "" {
				return item.Msg
			}
		}
	}
	return ""
}
