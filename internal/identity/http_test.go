package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurrentUserSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/me", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u1","email":"a@x.com"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "tok-123")
	u, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, User{ID: "u1", Email: "a@x.com"}, u)
}

func TestCurrentUserUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "")
	_, err := c.CurrentUser(context.Background())
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCurrentUserServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "tok")
	_, err := c.CurrentUser(context.Background())
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrUnauthenticated))
}

func TestCurrentUserMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "tok")
	_, err := c.CurrentUser(context.Background())
	require.Error(t, err)
}

func TestCurrentUserMissingEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"u1","email":"  "}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "tok")
	_, err := c.CurrentUser(context.Background())
	require.Error(t, err)
}
