package health

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/sandevgo/tallybot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "get root", method: http.MethodGet, path: "/", wantStatus: http.StatusOK, wantBody: AliveMessage},
		{name: "get any path", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK, wantBody: AliveMessage},
		{name: "head", method: http.MethodHead, path: "/", wantStatus: http.StatusOK, wantBody: ""},
		{name: "post rejected", method: http.MethodPost, path: "/", wantStatus: http.StatusMethodNotAllowed},
	}

	s := NewServer(&config.HealthConfig{Port: "0"})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestServer_StartAndShutdown(t *testing.T) {
	s := NewServer(&config.HealthConfig{Port: "0"})
	s.addr = "127.0.0.1:0"

	ctx := context.Background()
	require.NoError(t, s.Start(ctx))

	ts := httptest.NewServer(s)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/anything")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, AliveMessage, string(body))

	assert.NoError(t, s.Shutdown(ctx))
	assert.NoError(t, NewServer(&config.HealthConfig{}).Shutdown(ctx))
}

func TestServer_ShutdownRacesStart(t *testing.T) {
	s := NewServer(&config.HealthConfig{Port: "0"})
	s.addr = "127.0.0.1:0"
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, s.Start(ctx))
	}()
	go func() {
		defer wg.Done()
		assert.NoError(t, s.Shutdown(ctx))
	}()
	wg.Wait()

	assert.NoError(t, s.Shutdown(ctx))
}
