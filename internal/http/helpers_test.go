package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mistakeknot/significado/internal/auth"
	"github.com/mistakeknot/significado/internal/names"
	"github.com/mistakeknot/significado/internal/storage"
	"github.com/mistakeknot/significado/internal/ws"
)

// testEnv runs the router over an in-memory store with the localhost bypass,
// so requests need no key. The client keeps the session cookie.
type testEnv struct {
	srv    *httptest.Server
	hub    *ws.Hub
	store  *storage.InMemory
	gen    *names.Generator
	client *http.Client
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st := storage.NewInMemory()
	hub := ws.NewHub(nil)
	gen := names.NewGenerator(names.WithRandom(names.FixedRandom(0.9)))
	svc := NewService(st, nil).WithBroadcaster(hub).WithGenerator(gen)
	srv := httptest.NewServer(NewRouter(svc, hub.Handler(), auth.Middleware(nil)))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testEnv{srv: srv, hub: hub, store: st, gen: gen, client: &http.Client{Jar: jar}}
}

func (e *testEnv) post(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := e.client.Post(e.srv.URL+path, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (e *testEnv) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := e.client.Get(e.srv.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
