// Package media turns image files into data URLs stored on a project.
package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// ErrNotImage is returned when the bytes are not a recognised image type.
var ErrNotImage = errors.New("file is not an image")

// EncodeImage returns data as a base64 data URL. The MIME type is sniffed
// from the content.
func EncodeImage(data []byte) (string, error) {
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// EncodeImageFile reads path and returns its content as a data URL.
func EncodeImageFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image %s: %w", path, err)
	}
	url, err := EncodeImage(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return url, nil
}
