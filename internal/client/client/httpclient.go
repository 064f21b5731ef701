package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	cookiejar "github.com/juju/persistent-cookiejar"

	"github.com/dmitrijs2005/inkwell/internal/common"
	"github.com/dmitrijs2005/inkwell/internal/logging"
)

const maxResponseBytes = 10 << 20

// Options configures an HTTPClient.
type Options struct {
	// BaseURL is the API root, e.g. http://127.0.0.1:5000/api.
	BaseURL string
	Timeout time.Duration
	// CookieFile persists the session cookie across runs. Empty keeps the
	// jar in memory only.
	CookieFile string
	Logger     logging.Logger
	// Transport overrides http.DefaultTransport.
	Transport http.RoundTripper
}

// HTTPClient talks to the backend over HTTP/JSON. Credentials travel as
// cookies set by the backend and kept in a persistent jar.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	jar     *cookiejar.Jar
	persist bool
	log     logging.Logger
}

func NewHTTPClient(opts Options) (*HTTPClient, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", opts.BaseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{
		Filename:  opts.CookieFile,
		NoPersist: opts.CookieFile == "",
	})
	if err != nil {
		return nil, fmt.Errorf("open cookie jar: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = logging.Nop{}
	}

	hc := &http.Client{
		Jar:       jar,
		Timeout:   opts.Timeout,
		Transport: opts.Transport,
	}

	return &HTTPClient{
		baseURL: base,
		http:    hc,
		jar:     jar,
		persist: opts.CookieFile != "",
		log:     log,
	}, nil
}

// SessionCookies returns the cookies the jar would send to the API.
func (c *HTTPClient) SessionCookies() []*http.Cookie {
	return c.jar.Cookies(c.baseURL)
}

// ClearCookies drops every cookie and persists the empty jar.
func (c *HTTPClient) ClearCookies() error {
	c.jar.RemoveAll()
	return c.SaveCookies()
}

func (c *HTTPClient) SaveCookies() error {
	if !c.persist {
		return nil
	}
	if err := c.jar.Save(); err != nil {
		return fmt.Errorf("save cookie jar: %w", err)
	}
	return nil
}

func (c *HTTPClient) endpoint(query url.Values, elem ...string) string {
	u := c.baseURL.JoinPath(elem...)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// envelope is the common part of every backend response.
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e envelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

func (c *HTTPClient) doJSON(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return unexpectedError(fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return unexpectedError(err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// do sends req and decodes the envelope payload into out, which may be nil.
func (c *HTTPClient) do(req *http.Request, out any) error {
	ctx := req.Context()
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, reqID)

	ctx = logging.ContextWithRequestID(ctx, reqID)
	log := c.log.With("method", req.Method, "path", req.URL.Path)
	log.Debug(ctx, "api request")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug(ctx, "api request failed", "error", err)
		return networkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		log.Debug(ctx, "api response read failed", "error", err)
		return networkError(err)
	}
	log.Debug(ctx, "api response", "status", resp.StatusCode, "bytes", len(raw))

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return serverError(resp.StatusCode, env.message())
	}
	if decodeErr != nil {
		return unexpectedError(fmt.Errorf("decode response: %w", decodeErr))
	}
	if env.Success != nil && !*env.Success {
		return serverError(resp.StatusCode, env.message())
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return unexpectedError(fmt.Errorf("decode payload: %w", err))
	}
	return nil
}

var errMissingPayload = errors.New("response payload missing")
