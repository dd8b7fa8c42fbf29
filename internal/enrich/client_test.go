package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generationServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		assert.NotEmpty(t, req.Contents[0].Parts[0].Text)

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestGenerateReturnsCandidateText(t *testing.T) {
	srv := generationServer(t, http.StatusOK,
		`{"candidates":[{"content":{"parts":[{"text":"generated answer"}]}}]}`)
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL, APIKey: "test-key"}, srv.Client())
	got := client.Generate(context.Background(), "summarize this")

	require.NotNil(t, got)
	assert.Equal(t, "generated answer", *got)
}

func TestGenerateNilOnNon2xx(t *testing.T) {
	srv := generationServer(t, http.StatusTooManyRequests, `{"error":"quota"}`)
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL, APIKey: "test-key"}, srv.Client())
	assert.Nil(t, client.Generate(context.Background(), "prompt"))
}

func TestGenerateNilOnMalformedPayload(t *testing.T) {
	srv := generationServer(t, http.StatusOK, `not json at all`)
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL, APIKey: "test-key"}, srv.Client())
	assert.Nil(t, client.Generate(context.Background(), "prompt"))
}

func TestGenerateNilOnMissingCandidates(t *testing.T) {
	srv := generationServer(t, http.StatusOK, `{"candidates":[]}`)
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL, APIKey: "test-key"}, srv.Client())
	assert.Nil(t, client.Generate(context.Background(), "prompt"))
}

func TestGenerateNilOnTransportError(t *testing.T) {
	srv := generationServer(t, http.StatusOK, `{}`)
	srv.Close() // connection refused from here on

	client := NewClient(Config{Endpoint: srv.URL, APIKey: "test-key"}, nil)
	assert.Nil(t, client.Generate(context.Background(), "prompt"))
}

func TestDisabledClientAlwaysNil(t *testing.T) {
	client := NewDisabledClient()
	assert.Nil(t, client.Generate(context.Background(), "prompt"))
}
