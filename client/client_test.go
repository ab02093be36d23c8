package client

import (
	"bytes"
	"context"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/mistakeknot/significado/internal/http"
	"github.com/mistakeknot/significado/internal/storage"
	"github.com/mistakeknot/significado/internal/ws"
)

func newTestServer(t *testing.T) (*httptest.Server, *ws.Hub) {
	t.Helper()
	hub := ws.NewHub(nil)
	svc := httpapi.NewService(storage.NewInMemory(), nil).WithBroadcaster(hub)
	srv := httptest.NewServer(httpapi.NewRouter(svc, hub.Handler(), nil))
	t.Cleanup(srv.Close)
	return srv, hub
}

func TestClientWithoutServer(t *testing.T) {
	c := New("http://127.0.0.1:1")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := c.Search(ctx, "Ana")
	assert.Error(t, err)
}

func TestSearchAndResult(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx := context.Background()
	c := New(srv.URL + "/")

	_, err := c.Result(ctx)
	require.ErrorIs(t, err, ErrNoSearch)

	saved, err := c.Search(ctx, "Ana")
	require.NoError(t, err)
	assert.Equal(t, saved.SessionID, c.Session())

	res, err := c.Result(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", res.Name)
	assert.False(t, res.Fallback)
	assert.Contains(t, res.Report, "En numerología, 7 (espiritualidad y análisis)")

	// a second client resumes the same session
	other := New(srv.URL, WithSession(saved.SessionID))
	res2, err := other.Result(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", res2.Name)
}

func TestSearchRejectsBlank(t *testing.T) {
	srv, _ := newTestServer(t)
	_, err := New(srv.URL).Search(context.Background(), " ")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "name required", apiErr.Message)
}

func TestMeaningFallbackImage(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx := context.Background()
	c := New(srv.URL)

	a, err := c.Meaning(ctx, "María")
	require.NoError(t, err)
	assert.Equal(t, "María", a.Name)
	assert.True(t, a.Profile.HasAccent)

	fb, err := c.Fallback(ctx, "Ana")
	require.NoError(t, err)
	assert.Contains(t, fb.Report, "🔎 Significado del nombre Ana")

	data, filename, err := c.Image(ctx, "Ana")
	require.NoError(t, err)
	assert.Equal(t, "significado_Ana.png", filename)
	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestSubscribe(t *testing.T) {
	srv, hub := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c := New(srv.URL)

	_, err := c.Subscribe(ctx, "")
	require.Error(t, err, "no session yet")

	saved, err := c.Search(ctx, "Leo")
	require.NoError(t, err)
	events, err := c.Subscribe(ctx, "")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.Subscribers(saved.SessionID) == 1 }, 2*time.Second, 10*time.Millisecond)

	_, err = c.Result(ctx)
	require.NoError(t, err)

	first := <-events
	second := <-events
	assert.Equal(t, "report.analyzing", string(first.Type))
	assert.Equal(t, "report.ready", string(second.Type))
	assert.Equal(t, "Leo", second.Name)
	assert.Equal(t, saved.SessionID, second.SessionID)

	cancel()
	for range events {
	}
}

func TestWSURL(t *testing.T) {
	u, err := New("https://significado.example/").wsURL("abc")
	require.NoError(t, err)
	assert.Equal(t, "wss://significado.example/ws/searches/abc", u)
}
