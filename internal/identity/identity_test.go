package identity_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/scorereport/internal/identity"
)

func TestHeaderResolver(t *testing.T) {
	resolver := identity.HeaderResolver{}

	t.Run("resolves gateway headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(identity.HeaderUserID, "user-1")
		req.Header.Set(identity.HeaderRole, "admin")

		caller, err := resolver.Resolve(req)
		require.NoError(t, err)
		require.NotNil(t, caller)
		assert.Equal(t, "user-1", caller.UserID)
		assert.Equal(t, "admin", caller.Role)
	})

	t.Run("no headers means no identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		caller, err := resolver.Resolve(req)
		require.NoError(t, err)
		assert.Nil(t, caller)
	})
}

func TestClientResolve(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/userinfo", r.URL.Path)
		switch r.Header.Get("Authorization") {
		case "Bearer good-token":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"user-9","role":"service_role"}`))
		case "Bearer expired-token":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer provider.Close()

	client := identity.NewClient(provider.URL, 2*time.Second)

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good-token")

		caller, err := client.Resolve(req)
		require.NoError(t, err)
		require.NotNil(t, caller)
		assert.Equal(t, "user-9", caller.UserID)
		assert.Equal(t, "service_role", caller.Role)
	})

	t.Run("rejected token resolves to no identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer expired-token")

		caller, err := client.Resolve(req)
		require.NoError(t, err)
		assert.Nil(t, caller)
	})

	t.Run("missing token skips the lookup", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		caller, err := client.Resolve(req)
		require.NoError(t, err)
		assert.Nil(t, caller)
	})

	t.Run("provider failure is an error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer broken-token")

		_, err := client.Resolve(req)
		assert.Error(t, err)
	})
}
