package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBranding(t *testing.T) {
	var gotPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Stationery Co",
			"logo_url": "http://cdn.example/logo.png",
			"phone": "+1 555 0100",
			"contact_email": "help@stationery.example"
		}`))
	}))
	defer backend.Close()

	client := NewBrandingClient(backend.URL + "/")

	branding, err := client.GetBranding(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "/api/websites/1", gotPath)
	assert.Equal(t, "Stationery Co", branding.Name)
	assert.Equal(t, "http://cdn.example/logo.png", branding.LogoURL)
	assert.Equal(t, "+1 555 0100", branding.Phone)
	assert.Equal(t, "help@stationery.example", branding.ContactEmail)
}

func TestGetBrandingServerError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer backend.Close()

	client := NewBrandingClient(backend.URL)

	_, err := client.GetBranding(context.Background(), "1")
	assert.Error(t, err)
}

func TestGetBrandingUnreachable(t *testing.T) {
	client := NewBrandingClient("http://127.0.0.1:1")

	_, err := client.GetBranding(context.Background(), "1")
	assert.Error(t, err)
}

func TestFetchImage(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// credentials must never accompany logo requests
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("Cookie"))
		w.Write(payload)
	}))
	defer backend.Close()

	client := NewImageClient()

	data, err := client.FetchImage(context.Background(), backend.URL+"/logo.png")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestFetchImageNotFound(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	defer backend.Close()

	client := NewImageClient()

	_, err := client.FetchImage(context.Background(), backend.URL+"/missing.png")
	assert.Error(t, err)
}
