package embedded

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mistakeknot/significado/client"
	"github.com/mistakeknot/significado/internal/auth"
	"github.com/mistakeknot/significado/internal/storage"
)

func startServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:0"
	}
	srv, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, srv.Start(context.Background()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, srv.Stop(ctx))
	})
	return srv
}

func TestEmbeddedSearchFlow(t *testing.T) {
	srv := startServer(t, Config{DBPath: MemoryDB})
	ctx := context.Background()
	c := client.New(srv.URL())

	_, err := c.Result(ctx)
	require.ErrorIs(t, err, client.ErrNoSearch)

	saved, err := c.Search(ctx, "Valentina")
	require.NoError(t, err)

	got, err := c.Result(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Valentina", got.Name)
	assert.Contains(t, got.Report, "Significado detallado del nombre Valentina")

	stored, err := srv.Store().LastSearch(ctx, saved.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Valentina", stored.Name)
}

func TestEmbeddedOnDisk(t *testing.T) {
	srv := startServer(t, Config{DBPath: t.TempDir() + "/data/significado.db"})
	resp, err := http.Get(srv.URL() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestEmbeddedWithKeyring(t *testing.T) {
	ring := auth.NewKeyring(false, map[string]string{"secret": "tests"})
	srv := startServer(t, Config{Store: storage.NewInMemory(), Keyring: ring})
	ctx := context.Background()

	_, err := client.New(srv.URL()).Meaning(ctx, "Ana")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	a, err := client.New(srv.URL(), client.WithAPIKey("secret")).Meaning(ctx, "Ana")
	require.NoError(t, err)
	assert.Equal(t, 7, a.Numerology.Digit)
}

func TestStopWithoutStart(t *testing.T) {
	srv, err := New(Config{Addr: "127.0.0.1:0", Store: storage.NewInMemory()})
	require.NoError(t, err)
	assert.NoError(t, srv.Stop(context.Background()))
}
