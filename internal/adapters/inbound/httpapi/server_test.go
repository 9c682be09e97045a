package httpapi_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkraft/kraftreview/internal/adapters/inbound/httpapi"
	"github.com/openkraft/kraftreview/internal/application"
	"github.com/openkraft/kraftreview/internal/domain"
)

func TestServer_ServeAndShutdown(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Server.StaticDir = ""
	cfg.Server.ShutdownTimeout = 2 * time.Second
	srv := httpapi.New(cfg, application.NewReviewService())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	client := &http.Client{
		Timeout:   5 * time.Second,
		Transport: &http.Transport{DisableKeepAlives: true},
	}
	resp, err := client.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Code review API is running")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunFailsOnBadAddress(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := domain.DefaultConfig()
	cfg.Server.Addr = ln.Addr().String()
	srv := httpapi.New(cfg, application.NewReviewService())

	err = srv.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening on")
}
