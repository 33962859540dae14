package api_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/crosswordbuilder/internal/api"
	"github.com/mcoot/crosswordbuilder/internal/testutil"
)

func TestServerServesAndShutsDown(t *testing.T) {
	cfg := api.DefaultServerConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 0

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
	srv := api.NewServer(handler, cfg, testutil.NopLogger())
	assert.Equal(t, "127.0.0.1:0", srv.Addr())

	require.NoError(t, srv.Listen())
	assert.NotEqual(t, "127.0.0.1:0", srv.Addr())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve() }()

	resp, err := http.Get("http://" + srv.Addr() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	require.NoError(t, srv.Shutdown(t.Context()))
	assert.NoError(t, <-errCh)
}

func TestServerServeRequiresListen(t *testing.T) {
	srv := api.NewServer(http.NotFoundHandler(), api.DefaultServerConfig(), testutil.NopLogger())
	assert.EqualError(t, srv.Serve(), "server is not listening")
}
