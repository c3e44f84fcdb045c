package main

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func pngPart(name string) filePart {
	return filePart{field: "images", name: name, contentType: "image/png", data: []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A}}
}

func TestGalleryUploadAppendsImages(t *testing.T) {
	r := setupTestServer(t)
	token := loginAdmin(t, r)
	before := currentProfile(t, r)

	body, contentType := multipartBody(t, nil, []filePart{pngPart("a.png"), pngPart("b.png")})
	resp := performRequest(r, http.MethodPost, "/api/gallery", body, token, contentType)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	after := currentProfile(t, r)
	require.Len(t, after.GalleryImages, len(before.GalleryImages)+2)
	for _, img := range after.GalleryImages[len(before.GalleryImages):] {
		require.True(t, strings.HasPrefix(img, "data:image/png;base64,"))
	}
}

func TestGalleryRejectsMoreThanTenFiles(t *testing.T) {
	r := setupTestServer(t)
	token := loginAdmin(t, r)
	before := currentProfile(t, r)

	files := make([]filePart, 11)
	for i := range files {
		files[i] = pngPart(fmt.Sprintf("img-%d.png", i))
	}
	body, contentType := multipartBody(t, nil, files)
	resp := performRequest(r, http.MethodPost, "/api/gallery", body, token, contentType)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Len(t, currentProfile(t, r).GalleryImages, len(before.GalleryImages))
}

func TestGalleryRejectsNonImageBatch(t *testing.T) {
	r := setupTestServer(t)
	token := loginAdmin(t, r)
	before := currentProfile(t, r)

	body, contentType := multipartBody(t, nil, []filePart{
		pngPart("ok.png"),
		{field: "images", name: "notes.txt", contentType: "text/plain", data: []byte("nope")},
	})
	resp := performRequest(r, http.MethodPost, "/api/gallery", body, token, contentType)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	// the whole batch is rejected; not even the valid file is persisted
	require.Len(t, currentProfile(t, r).GalleryImages, len(before.GalleryImages))
}

func TestGalleryRequiresFiles(t *testing.T) {
	r := setupTestServer(t)
	token := loginAdmin(t, r)

	body, contentType := multipartBody(t, map[string]string{"unused": "1"}, nil)
	resp := performRequest(r, http.MethodPost, "/api/gallery", body, token, contentType)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGalleryDeleteShiftsRemaining(t *testing.T) {
	r := setupTestServer(t)
	token := loginAdmin(t, r)
	before := currentProfile(t, r)
	require.Len(t, before.GalleryImages, 3)

	resp := performRequest(r, http.MethodDelete, "/api/gallery/0", nil, token, "")
	require.Equal(t, http.StatusOK, resp.Code)

	after := currentProfile(t, r)
	require.Len(t, after.GalleryImages, 2)
	require.Equal(t, before.GalleryImages[1], after.GalleryImages[0])
	require.Equal(t, before.GalleryImages[2], after.GalleryImages[1])
}

func TestGalleryDeleteInvalidIndex(t *testing.T) {
	r := setupTestServer(t)
	token := loginAdmin(t, r)
	before := currentProfile(t, r)

	for _, idx := range []string{"-1", "3", "xyz"} {
		resp := performRequest(r, http.MethodDelete, "/api/gallery/"+idx, nil, token, "")
		require.Equal(t, http.StatusBadRequest, resp.Code)
		require.Contains(t, resp.Body.String(), "Invalid image index")
	}
	require.Equal(t, before.GalleryImages, currentProfile(t, r).GalleryImages)
}
