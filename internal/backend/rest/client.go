// Package rest is the live implementation of the backend capabilities: a
// thin HTTP client over the remote inventory service. It attaches the bearer
// token when one is stored and normalizes failures into zerror kinds the
// flows can pattern-match on.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vats147/Inventory-mobile-app/internal/apperr"
	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/config"
	"github.com/vats147/Inventory-mobile-app/pkg/zerror"
)

// maxErrorBody caps how much of a failed response is read for message
// extraction.
const maxErrorBody = 8 << 10

// TokenSource supplies the stored bearer token. An empty token means the
// request goes out without an Authorization header and the backend decides.
type TokenSource interface {
	Token() (string, error)
}

// Client talks to the remote backend. One Client fills every capability
// slot of backend.Backend.
type Client struct {
	baseURL        string
	loginEndpoints []string
	http           *http.Client
	tokens         TokenSource
	logger         *slog.Logger
}

var (
	_ backend.Auth      = (*Client)(nil)
	_ backend.Products  = (*Client)(nil)
	_ backend.Analytics = (*Client)(nil)
	_ backend.Activity  = (*Client)(nil)
	_ backend.Users     = (*Client)(nil)
)

func New(cfg config.API, tokens TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		loginEndpoints: cfg.LoginEndpoints,
		http:           &http.Client{Timeout: cfg.Timeout},
		tokens:         tokens,
		logger:         logger.With(slog.String("service", "rest")),
	}
}

// Backend bundles the client into every capability slot.
func (c *Client) Backend() backend.Backend {
	return backend.Backend{
		Auth:      c,
		Products:  c,
		Analytics: c,
		Activity:  c,
		Users:     c,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, path, query, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(req.Context(), "backend response",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode >= 400 {
		return errorFromResponse(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// transportError classifies a failure that produced no HTTP response at all.
func transportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return apperr.ErrRequestTimeout.WrapParent(err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperr.ErrRequestTimeout.WrapParent(err)
	}
	return apperr.ErrBackendUnavailable.WrapParent(err)
}

// errorFromResponse maps an HTTP failure onto an error kind, pulling the
// message out of the body when the backend sent one.
func errorFromResponse(resp *http.Response) error {
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = json.Unmarshal(raw, &body) // best effort; the body may not be JSON

	var zErr zerror.ZError
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		zErr = apperr.ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		zErr = apperr.ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		zErr = apperr.ErrNotFound
	case resp.StatusCode == http.StatusRequestTimeout || resp.StatusCode == http.StatusGatewayTimeout:
		zErr = apperr.ErrRequestTimeout
	case resp.StatusCode == http.StatusBadRequest:
		zErr = zerror.NewBadRequest("BAD_REQUEST", "bad request")
	case resp.StatusCode >= 500:
		zErr = zerror.NewInternalServerError("BACKEND_ERROR", "backend error")
	default:
		zErr = zerror.NewZError(nil, zerror.StatusUnknown, "UNEXPECTED_STATUS",
			fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	return zErr.WithMsg(body.Message)
}

func intParam(v int) string { return strconv.Itoa(v) }

// writeMultipart encodes a product form the way the backend expects
// create/update bodies: plain fields plus an optional image file.
func writeMultipart(form backend.ProductForm) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":              form.Name,
		"price":             strconv.FormatFloat(form.Price, 'f', -1, 64),
		"quantity":          intParam(form.Quantity),
		"category":          form.Category,
		"code":              form.Code,
		"description":       form.Description,
		"lowStockThreshold": intParam(form.LowStockThreshold),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %q: %w", name, err)
		}
	}

	if len(form.Image) > 0 {
		name := form.ImageName
		if name == "" {
			name = "image"
		}
		part, err := w.CreateFormFile("image", name)
		if err != nil {
			return nil, "", fmt.Errorf("create image part: %w", err)
		}
		if _, err := part.Write(form.Image); err != nil {
			return nil, "", fmt.Errorf("write image part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
