package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfilePartialUpdateTouchesOnlyProvidedFields(t *testing.T) {
	r := setupTestServer(t)
	token := loginAdmin(t, r)
	before := currentProfile(t, r)

	resp := performJSON(t, r, http.MethodPut, "/api/profile", map[string]any{
		"name":        "Jane Doe",
		"accentColor": "#000000",
	}, token)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	after := currentProfile(t, r)
	require.Equal(t, "Jane Doe", after.Name)
	require.Equal(t, "#000000", after.AccentColor)
	require.Equal(t, before.Description, after.Description)
	require.Equal(t, before.BackgroundColor, after.BackgroundColor)
	require.Equal(t, before.ServicesSectionTitle, after.ServicesSectionTitle)
	require.Equal(t, before.ProfileImage, after.ProfileImage)
	require.True(t, after.UpdatedAt.After(before.UpdatedAt) || after.UpdatedAt.Equal(before.UpdatedAt))
}

func TestShowContactFormAcceptsLiteralFalse(t *testing.T) {
	r := setupTestServer(t)
	token := loginAdmin(t, r)

	resp := performJSON(t, r, http.MethodPut, "/api/profile", map[string]any{
		"showContactForm": false,
	}, token)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	require.False(t, currentProfile(t, r).ShowContactForm)

	// and absent means untouched
	resp = performJSON(t, r, http.MethodPut, "/api/profile", map[string]any{"name": "Still Jane"}, token)
	require.Equal(t, http.StatusOK, resp.Code)
	require.False(t, currentProfile(t, r).ShowContactForm)
}

func TestCustomCodeAcceptsExplicitEmptyToClear(t *testing.T) {
	r := setupTestServer(t)
	token := loginAdmin(t, r)

	resp := performJSON(t, r, http.MethodPut, "/api/profile", map[string]any{
		"customCode": "<script>console.log(1)</script>",
	}, token)
	require.Equal(t, http.StatusOK, resp.Code)
	require.NotEmpty(t, currentProfile(t, r).CustomCode)

	resp = performJSON(t, r, http.MethodPut, "/api/profile", map[string]any{"customCode": ""}, token)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Empty(t, currentProfile(t, r).CustomCode)
}

func TestExplicitEmptyNameIsRejected(t *testing.T) {
	r := setupTestServer(t)
	token := loginAdmin(t, r)

	resp := performJSON(t, r, http.MethodPut, "/api/profile", map[string]any{"name": ""}, token)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Equal(t, "John Doe", currentProfile(t, r).Name)
}

func TestSectionOrderAcceptsArrayAndCommaString(t *testing.T) {
	r := setupTestServer(t)
	token := loginAdmin(t, r)

	resp := performJSON(t, r, http.MethodPut, "/api/profile", map[string]any{
		"sectionOrder": []string{"faq-section", "links-section"},
	}, token)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, []string{"faq-section", "links-section"}, currentProfile(t, r).SectionOrder)

	resp = performJSON(t, r, http.MethodPut, "/api/profile", map[string]any{
		"sectionOrder": []string{"links-section, faq-section"},
	}, token)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, []string{"links-section", "faq-section"}, currentProfile(t, r).SectionOrder)
}

func TestProfileImageUploadViaMultipart(t *testing.T) {
	r := setupTestServer(t)
	token := loginAdmin(t, r)

	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x10, 0x20}
	body, contentType := multipartBody(t,
		map[string]string{"name": "Photo Jane"},
		[]filePart{{field: "profileImage", name: "me.jpg", contentType: "image/jpeg", data: payload}},
	)
	resp := performRequest(r, http.MethodPut, "/api/profile", body, token, contentType)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	p := currentProfile(t, r)
	require.Equal(t, "Photo Jane", p.Name)
	require.True(t, strings.HasPrefix(p.ProfileImage, "data:image/jpeg;base64,"))
}

func TestNonImageProfileUploadIsRejectedAndNotPersisted(t *testing.T) {
	r := setupTestServer(t)
	token := loginAdmin(t, r)
	before := currentProfile(t, r)

	body, contentType := multipartBody(t, nil, []filePart{
		{field: "profileImage", name: "notes.txt", contentType: "text/plain", data: []byte("not an image")},
	})
	resp := performRequest(r, http.MethodPut, "/api/profile", body, token, contentType)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Equal(t, before.ProfileImage, currentProfile(t, r).ProfileImage)
}

func TestLogoUpdate(t *testing.T) {
	r := setupTestServer(t)
	token := loginAdmin(t, r)

	body, contentType := multipartBody(t, nil, []filePart{
		{field: "logoImage", name: "logo.png", contentType: "image/png", data: []byte{0x89, 'P', 'N', 'G'}},
	})
	resp := performRequest(r, http.MethodPut, "/api/logo", body, token, contentType)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	require.True(t, strings.HasPrefix(currentProfile(t, r).LogoImage, "data:image/png;base64,"))
}
