package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL+"/", opts...)
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_RejectsBadURL(t *testing.T) {
	_, err := NewHTTPClient("localhost:8020")
	require.Error(t, err)

	_, err = NewHTTPClient("ftp://example.com")
	require.Error(t, err)
}

func TestGetAllUsers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/getall", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"u1","name":"John Doe","email":"john@example.com","isArtist":false,"isAdmin":false,"createdAt":"2023-01-01T00:00:00Z"}]`))
	})

	users, err := c.GetAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "john@example.com", users[0].Email)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), users[0].CreatedAt)
}

func TestGetAllUsers_NullBodyIsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	users, err := c.GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestLogin_EscapesPathSegments(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login/a%2Fb@example.com/p%2Fw%20d", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"id":"u9","email":"a/b@example.com"}`))
	})

	u, err := c.Login(context.Background(), "a/b@example.com", "p/w d")
	require.NoError(t, err)
	assert.Equal(t, "u9", u.ID)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrUnexpectedStatus},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrUnexpectedStatus},
		{name: "garbage body", status: http.StatusOK, body: "<html>", wantErr: ErrBadResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Login(context.Background(), "x@example.com", "pw")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransportFailure_IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url)
	require.NoError(t, err)

	_, err = c.GetAllUsers(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestTimeout_IsUnavailable(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, WithTimeout(50*time.Millisecond))
	defer close(release)

	err := c.Ping(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestPing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	})
	require.NoError(t, c.Ping(context.Background()))

	c = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"DEGRADED"}`))
	})
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}
