package imagedata

import "errors"

// ErrNotImage is returned when an upload does not declare an image/* content type.
var ErrNotImage = errors.New("only image files are allowed")

// ErrTooLarge is returned when an upload exceeds MaxFileSize.
var ErrTooLarge = errors.New("file too large (max 10MB)")
