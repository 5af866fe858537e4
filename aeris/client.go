package aeris

import (
	"log/slog"
	"net/http"
)

// Client is the composed Aeris API client: one configured transport
// with each supported endpoint constructed against it.
type Client struct {
	// HTTP is the raw transport. Requests made through it hit the
	// configured base URL with credentials included.
	HTTP Transport

	// AirQuality is the air quality endpoint.
	AirQuality *AirQualityEndpoint
}

type clientOptions struct {
	baseURL      string
	httpClient   *http.Client
	logger       *slog.Logger
	transport    Transport
	retainBodies bool
}

// Option configures a Client.
type Option func(*clientOptions)

// WithBaseURL overrides the API host, for example to point at a
// caching proxy or a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) { o.baseURL = baseURL }
}

// WithHTTPClient supplies the *http.Client used for requests. Timeout
// and retry policy belong to it.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = c }
}

// WithLogger supplies a structured logger. Without one the client is
// silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) { o.logger = l }
}

// WithTransport replaces the HTTP transport entirely. Credentials and
// base URL options are ignored when set.
func WithTransport(t Transport) Option {
	return func(o *clientOptions) { o.transport = t }
}

// WithRawBodyRetention keeps raw response bodies on successful
// responses instead of stripping them. Responses can be large; the
// default trades the raw bytes away once they are parsed.
func WithRawBodyRetention() Option {
	return func(o *clientOptions) { o.retainBodies = true }
}

// New creates an Aeris API client from credentials. Sign up with
// AerisWeather to obtain a client ID and secret.
func New(clientID, clientSecret string, opts ...Option) *Client {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	transport := o.transport
	if transport == nil {
		transport = NewHTTPTransport(clientID, clientSecret, o.baseURL, o.httpClient, o.logger)
	}

	return &Client{
		HTTP:       transport,
		AirQuality: newAirQualityEndpoint(transport, !o.retainBodies, o.logger),
	}
}
