package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mistakeknot/significado/internal/auth"
	"github.com/mistakeknot/significado/internal/core"
	"github.com/mistakeknot/significado/internal/storage"
)

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)
	resp := env.get(t, "/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "ok", string(body))
}

func TestResultWithoutSearchIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	resp := env.get(t, "/api/result")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSearchThenResult(t *testing.T) {
	env := newTestEnv(t)

	resp := env.post(t, "/api/search", map[string]string{"name": "  Ana "})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	saved := decode[searchResponse](t, resp)
	assert.Equal(t, "Ana", saved.Name)
	assert.NotEmpty(t, saved.SessionID)

	stored, err := env.store.LastSearch(context.Background(), saved.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", stored.Name)

	resp = env.get(t, "/api/result")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[resultResponse](t, resp)
	want, err := env.gen.Report("Ana")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.False(t, got.Fallback)
	assert.Equal(t, want, got.Report)
}

func TestSearchOverwritesWithinSession(t *testing.T) {
	env := newTestEnv(t)
	first := decode[searchResponse](t, env.post(t, "/api/search", map[string]string{"name": "Ana"}))
	second := decode[searchResponse](t, env.post(t, "/api/search", map[string]string{"name": "Lucía"}))
	assert.Equal(t, first.SessionID, second.SessionID)

	got := decode[resultResponse](t, env.get(t, "/api/result"))
	assert.Equal(t, "Lucía", got.Name)
}

func TestSearchValidation(t *testing.T) {
	env := newTestEnv(t)

	resp := env.post(t, "/api/search", map[string]string{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "name required", decode[map[string]string](t, resp)["error"])

	raw, err := env.client.Post(env.srv.URL+"/api/search", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer raw.Body.Close()
	assert.Equal(t, http.StatusBadRequest, raw.StatusCode)
}

func TestSearchSetsSessionCookie(t *testing.T) {
	env := newTestEnv(t)
	resp := env.post(t, "/api/search", map[string]string{"name": "Leo"})
	var found *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookie {
			found = c
		}
	}
	require.NotNil(t, found)
	assert.True(t, found.HttpOnly)
	assert.Equal(t, decode[searchResponse](t, resp).SessionID, found.Value)
}

type failingStore struct{ storage.Store }

func (failingStore) SaveSearch(context.Context, string, string) (core.Search, error) {
	return core.Search{}, errors.New("disk full")
}

func (failingStore) LastSearch(context.Context, string) (core.Search, error) {
	return core.Search{}, errors.New("disk full")
}

func TestStoreFailuresAreServerErrors(t *testing.T) {
	router := NewRouter(NewService(failingStore{}, nil), nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"name":"Ana"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/result", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "s1"})
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRemoteCallerNeedsKey(t *testing.T) {
	ring := auth.NewKeyring(true, map[string]string{"secret": "web"})
	router := NewRouter(NewService(storage.NewInMemory(), nil), nil, auth.Middleware(ring))

	req := httptest.NewRequest(http.MethodGet, "/api/meaning/Ana", nil)
	req.RemoteAddr = "203.0.113.10:9999"
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req.Header.Set("Authorization", "Bearer secret")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	// health stays open
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.RemoteAddr = "203.0.113.10:9999"
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

type recordingBus struct{ events []core.Event }

func (b *recordingBus) Broadcast(_ string, event any) {
	b.events = append(b.events, event.(core.Event))
}

func TestResultEmitsStatusEvents(t *testing.T) {
	bus := &recordingBus{}
	st := storage.NewInMemory()
	svc := NewService(st, nil).WithBroadcaster(bus)
	svc.now = func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) }
	router := NewRouter(svc, nil, nil)

	_, err := st.SaveSearch(context.Background(), "s1", "Elena")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/result", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "s1"})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	require.Len(t, bus.events, 2)
	assert.Equal(t, core.EventReportAnalyzing, bus.events[0].Type)
	assert.Equal(t, core.EventReportReady, bus.events[1].Type)
	assert.Equal(t, "Elena", bus.events[1].Name)
	assert.NotEmpty(t, bus.events[1].Report)
	assert.Equal(t, "s1", bus.events[1].SessionID)
}
