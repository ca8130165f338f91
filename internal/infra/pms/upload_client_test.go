package pms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeep/config"
	domainerrors "innkeep/internal/domain/errors"
)

func uploadClientFor(t *testing.T, server *httptest.Server) *uploadClient {
	t.Helper()

	cfg := &config.Config{PMS: &config.PMSConfig{BaseURL: server.URL}}
	client, err := NewUploadClient(cfg, nil, nil)
	require.NoError(t, err)

	return client.(*uploadClient)
}

func TestNewUploadClient_InertWithoutBaseURL(t *testing.T) {
	// An unconfigured PMS must not block startup; the client constructs
	// fine and rejects uploads as a bad gateway.
	client, err := NewUploadClient(&config.Config{}, nil, nil)
	require.NoError(t, err)

	_, err = client.UploadImage(context.Background(), "lobby.jpg", "image/jpeg", 9, strings.NewReader("fake-body"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
}

func TestUploadClient_UploadImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/uploads/image", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "lobby.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://cdn.example/lobby.jpg","filename":"lobby.jpg","size":9}`))
	}))
	defer server.Close()

	client := uploadClientFor(t, server)
	result, err := client.UploadImage(context.Background(), "lobby.jpg", "image/jpeg", 9, strings.NewReader("fake-body"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/lobby.jpg", result.URL)
	assert.Equal(t, "lobby.jpg", result.Filename)
}

func TestUploadClient_UpstreamFailureMapsToBadGateway(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := uploadClientFor(t, server)
	_, err := client.UploadImage(context.Background(), "lobby.jpg", "image/jpeg", 9, strings.NewReader("fake-body"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
}

func TestUploadClient_UnreachableUpstream(t *testing.T) {
	server := httptest.NewServer(nil)
	server.Close() // Nothing listening anymore.

	client := uploadClientFor(t, server)
	_, err := client.UploadImage(context.Background(), "lobby.jpg", "image/jpeg", 9, strings.NewReader("fake-body"))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
}
