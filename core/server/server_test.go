package server_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tally/core/server"
)

func testHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "OK")
	})
}

// getFreePort returns a free port for testing
func getFreePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}

func waitForServer(t *testing.T, url string) *http.Response {
	t.Helper()
	var resp *http.Response
	require.Eventually(t, func() bool {
		r, err := http.Get(url)
		if err != nil {
			return false
		}
		resp = r
		return true
	}, 2*time.Second, 10*time.Millisecond)
	return resp
}

func TestServerRunServesAndStops(t *testing.T) {
	t.Parallel()

	addr := fmt.Sprintf("127.0.0.1:%d", getFreePort(t))
	srv := server.New(addr, server.WithShutdownTimeout(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, testHandler())() }()

	resp := waitForServer(t, "http://"+addr+"/")
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServerDoubleStart(t *testing.T) {
	t.Parallel()

	addr := fmt.Sprintf("127.0.0.1:%d", getFreePort(t))
	srv := server.New(addr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Start(ctx, testHandler())

	resp := waitForServer(t, "http://"+addr+"/")
	resp.Body.Close()

	err := srv.Start(context.Background(), testHandler())
	assert.ErrorIs(t, err, server.ErrServerAlreadyRunning)

	require.NoError(t, srv.Stop())
}

func TestServerPortConflict(t *testing.T) {
	t.Parallel()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv := server.New(l.Addr().String())
	err = srv.Run(context.Background(), testHandler())()
	require.Error(t, err)
}

func TestStopWhenNotRunning(t *testing.T) {
	t.Parallel()

	assert.NoError(t, server.New(":0").Stop())
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		srv, err := server.NewFromConfig(server.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, ":5050", srv.Addr())
	})

	t.Run("missing address", func(t *testing.T) {
		srv, err := server.NewFromConfig(server.Config{ReadTimeout: time.Second})
		assert.ErrorIs(t, err, server.ErrMissingAddress)
		assert.Nil(t, srv)
	})

	t.Run("zero values", func(t *testing.T) {
		srv, err := server.NewFromConfig(server.Config{Addr: ":8080"}, server.WithShutdownTimeout(time.Second))
		require.NoError(t, err)
		assert.NotNil(t, srv)
	})
}
