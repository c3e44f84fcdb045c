// Package imagedata converts uploaded images into self-describing inline
// data URLs so they can live inside the profile document. Nothing is resized
// or recompressed; uploads are stored byte for byte and the size cap is the
// only control.
package imagedata

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"io"
	"mime/multipart"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	// MaxFileSize is the per-upload byte limit.
	MaxFileSize = 10 << 20
	// MaxGalleryFiles caps how many images one gallery request may carry.
	MaxGalleryFiles = 10
)

// FromFileHeader validates one multipart upload and returns its data-URL form.
// The declared content type is the admission check: anything outside image/*
// is rejected before the body is read.
func FromFileHeader(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxFileSize {
		return "", ErrTooLarge
	}
	mimetype := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(mimetype, "image/") {
		return "", ErrNotImage
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxFileSize {
		return "", ErrTooLarge
	}
	return DataURL(mimetype, data), nil
}

// DataURL builds the inline representation stored in the profile document.
func DataURL(mimetype string, data []byte) string {
	return "data:" + mimetype + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// PlaceholderPNG renders a solid-color PNG as a data URL. The bootstrap uses
// it to seed a fresh install with fully embedded images instead of dead file
// paths.
func PlaceholderPNG(width, height int, c color.Color) (string, error) {
	img := imaging.New(width, height, c)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("encode placeholder: %w", err)
	}
	return DataURL("image/png", buf.Bytes()), nil
}
