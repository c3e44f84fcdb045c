package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"biosite/pkg/mailer"

	"github.com/stretchr/testify/require"
)

func TestContactRelaysMessageToConfiguredAddress(t *testing.T) {
	r := setupTestServer(t)

	var got mailer.Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	relay = mailer.New(srv.URL)

	resp := performJSON(t, r, http.MethodPost, "/api/contact", map[string]string{
		"name": "Visitor", "email": "visitor@example.com", "message": "Hello!",
	}, "")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	// seeded profile routes contact mail to admin@example.com
	require.Equal(t, "admin@example.com", got.To)
	require.Equal(t, "visitor@example.com", got.ReplyTo)
	require.Equal(t, "New contact from Visitor", got.Subject)
	require.Contains(t, got.Body, "Hello!")
}

func TestContactRequiresAllFields(t *testing.T) {
	r := setupTestServer(t)

	for _, payload := range []map[string]string{
		{"email": "v@example.com", "message": "hi"},
		{"name": "V", "message": "hi"},
		{"name": "V", "email": "v@example.com"},
		{"name": "", "email": "v@example.com", "message": "hi"},
	} {
		resp := performJSON(t, r, http.MethodPost, "/api/contact", payload, "")
		require.Equal(t, http.StatusBadRequest, resp.Code)
		require.Contains(t, resp.Body.String(), "All fields are required")
	}
}

func TestContactForbiddenWhenFormDisabled(t *testing.T) {
	r := setupTestServer(t)
	token := loginAdmin(t, r)

	resp := performJSON(t, r, http.MethodPut, "/api/profile", map[string]any{"showContactForm": false}, token)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performJSON(t, r, http.MethodPost, "/api/contact", map[string]string{
		"name": "Visitor", "email": "visitor@example.com", "message": "valid payload",
	}, "")
	require.Equal(t, http.StatusForbidden, resp.Code)
	require.Contains(t, resp.Body.String(), "Contact form is disabled")
}

func TestContactRelayFailureIsTerminal(t *testing.T) {
	r := setupTestServer(t)

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		calls++
		http.Error(w, "relay down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	relay = mailer.New(srv.URL)

	resp := performJSON(t, r, http.MethodPost, "/api/contact", map[string]string{
		"name": "Visitor", "email": "visitor@example.com", "message": "Hello!",
	}, "")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	require.Contains(t, resp.Body.String(), "Failed to send message")
	require.Equal(t, 1, calls) // no retries
}
