package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	// Create two clients and make sure they don't share the same underlying resty.Client
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestHTTPClient_WithTraceIDs(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get(TraceIDHeader))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient().WithTraceIDs(fixedIDs("generated"))
	client.SetBaseURL(srv.URL)

	_, err := client.R().Get("/")
	require.NoError(t, err)

	_, err = client.R().SetContext(WithTraceID(context.Background(), "from-ctx")).Get("/")
	require.NoError(t, err)

	_, err = client.R().SetHeader(TraceIDHeader, "explicit").Get("/")
	require.NoError(t, err)

	assert.Equal(t, []string{"generated", "from-ctx", "explicit"}, got)
}
