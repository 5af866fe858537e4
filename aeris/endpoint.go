package aeris

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// QueryOptions declares every optional parameter recognized by the
// endpoint actions. Zero-valued fields are omitted from the query
// string entirely, never sent as empty values.
type QueryOptions struct {
	// Filter limits results to the named filter, for example "1hr".
	Filter string

	// Query restricts results by property, for example "state:mn".
	Query string

	// Limit caps the total number of results returned.
	Limit int

	// Skip offsets into the result set for paging.
	Skip int

	// Sort orders results, for example "dt:-1".
	Sort string

	// PLimit and PSkip page through the periods within each result.
	PLimit int
	PSkip  int

	// Radius bounds the search distance, for example "50mi".
	Radius string

	// MinDist sets the minimum distance between returned results.
	MinDist string

	// Fields selects a subset of response properties; joined with
	// commas on the wire.
	Fields []string
}

// values renders the non-zero options as query parameters. Safe on a
// nil receiver so actions can pass options straight through.
func (o *QueryOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.Filter != "" {
		v.Set("filter", o.Filter)
	}
	if o.Query != "" {
		v.Set("query", o.Query)
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Skip > 0 {
		v.Set("skip", strconv.Itoa(o.Skip))
	}
	if o.Sort != "" {
		v.Set("sort", o.Sort)
	}
	if o.PLimit > 0 {
		v.Set("plimit", strconv.Itoa(o.PLimit))
	}
	if o.PSkip > 0 {
		v.Set("pskip", strconv.Itoa(o.PSkip))
	}
	if o.Radius != "" {
		v.Set("radius", o.Radius)
	}
	if o.MinDist != "" {
		v.Set("mindist", o.MinDist)
	}
	if len(o.Fields) > 0 {
		v.Set("fields", strings.Join(o.Fields, ","))
	}
	return v
}

// endpoint holds the pieces shared by every Aeris endpoint: the fixed
// path segment, a documentation reference, the per-element
// deserializer, and the transport. Path and docs are required at
// construction; there is no runtime did-you-override check to get
// wrong.
type endpoint[M any] struct {
	transport   Transport
	path        string
	docs        string
	deserialize deserializerFunc[M]
	stripBody   bool
	logger      *slog.Logger
}

func newEndpoint[M any](t Transport, path, docs string, deserialize deserializerFunc[M], stripBody bool, logger *slog.Logger) *endpoint[M] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &endpoint[M]{
		transport:   t,
		path:        path,
		docs:        docs,
		deserialize: deserialize,
		stripBody:   stripBody,
		logger:      logger,
	}
}

// request performs one action against the endpoint. action is either a
// named action ("closest", "route") or an id for :id lookups.
//
// A body on a GET action is a caller bug and fails before any network
// activity. Transport failures propagate unmodified; envelope and
// payload failures surface as the client's typed errors.
func (e *endpoint[M]) request(ctx context.Context, method, action string, query url.Values, body []byte) (*APIResponse[M], error) {
	if body != nil && method == http.MethodGet {
		return nil, &UsageError{
			Message: fmt.Sprintf("request body not allowed on GET %s/%s (see %s)", e.path, action, e.docs),
		}
	}

	path := e.path + "/" + action
	resp, err := e.transport.Request(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	result, err := normalizeResponse(resp, e.deserialize)
	if err != nil {
		return nil, err
	}

	// Error paths above still hold the raw body for diagnostics; only
	// a fully parsed response gets stripped.
	if e.stripBody {
		resp.StripBody()
	}

	e.logger.Debug("aeris endpoint response",
		"endpoint", e.path,
		"action", action,
		"items", len(result.Items),
	)
	return result, nil
}
