package aeris

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/couchcryptid/aeris-weather-client/internal/jsonwalk"
)

const defaultBaseURL = "https://api.aerisapi.com"

const userAgent = "aeris-weather-client-go/1.0"

// Transport executes HTTP requests against the Aeris API. The client
// core only calls this interface; connection pooling, TLS, timeouts,
// and retry policy all live behind it.
//
// path is relative to the transport's base URL. body, when non-nil, is
// a JSON document.
type Transport interface {
	Request(ctx context.Context, method, path string, query url.Values, body []byte) (*Response, error)
}

// Response is the raw transport result. It is retained on API responses
// for diagnostics; the Body is stripped after successful parsing unless
// retention is configured on the client.
type Response struct {
	Status int
	Header http.Header
	URL    string
	Body   []byte
}

// JSON decodes the response body into a dynamic JSON tree.
func (r *Response) JSON() (jsonwalk.Value, error) {
	if r.Body == nil {
		return nil, errors.New("response body is empty or was stripped")
	}
	return jsonwalk.Decode(r.Body)
}

// StripBody drops the raw body to bound memory use. Status, headers,
// and URL remain available.
func (r *Response) StripBody() {
	r.Body = nil
}

// HTTPTransport is the net/http implementation of Transport. Client
// credentials are appended to every request's query string.
type HTTPTransport struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewHTTPTransport creates a transport for the Aeris API. baseURL,
// httpClient, and logger may be zero; sensible defaults are applied.
func NewHTTPTransport(clientID, clientSecret, baseURL string, httpClient *http.Client, logger *slog.Logger) *HTTPTransport {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &HTTPTransport{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   httpClient,
		logger:       logger,
	}
}

// BaseURL returns the base URL requests are made against.
func (t *HTTPTransport) BaseURL() string {
	return t.baseURL
}

// Request performs one HTTP request and reads the full body. Transport
// failures are returned wrapped but otherwise untranslated.
func (t *HTTPTransport) Request(ctx context.Context, method, path string, query url.Values, body []byte) (*Response, error) {
	q := url.Values{}
	for k, vs := range query {
		q[k] = vs
	}
	q.Set("client_id", t.clientID)
	q.Set("client_secret", t.clientSecret)

	fullURL := t.baseURL + "/" + strings.TrimPrefix(path, "/") + "?" + q.Encode()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("aeris api request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read aeris api response: %w", err)
	}

	t.logger.Debug("aeris api response",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"bytes", len(data),
	)

	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		URL:    fullURL,
		Body:   data,
	}, nil
}
