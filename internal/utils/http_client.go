package utils

import (
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the request trace identifier in both directions.
const TraceIDHeader = "X-Trace-ID"

// IDGenerator produces unique string identifiers.
type IDGenerator interface {
	Generate() string
}

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient().WithTraceIDs(utils.NewUUIDGenerator())
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithTraceIDs makes every request carry a [TraceIDHeader]. The trace id is
// taken from the request context (see [WithTraceID]) or, when absent, drawn
// from ids.
func (c *HTTPClient) WithTraceIDs(ids IDGenerator) *HTTPClient {
	c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(TraceIDHeader) != "" {
			return nil
		}
		traceID, ok := TraceIDFromContext(req.Context())
		if !ok {
			traceID = ids.Generate()
		}
		req.SetHeader(TraceIDHeader, traceID)
		return nil
	})
	return c
}
