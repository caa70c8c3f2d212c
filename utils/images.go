package utils

import "strings"

// Images builds sized thumbnail URLs on the image CDN.
type Images struct {
	baseURL string
}

// NewImages creates an Images builder rooted at baseURL.
func NewImages(baseURL string) *Images {
	return &Images{baseURL: strings.TrimRight(baseURL, "/")}
}

// Thumbnail returns the URL of identifier resized to size ("64x64", "100x100", ...).
func (i *Images) Thumbnail(identifier, size string) string {
	return i.baseURL + "/" + size + "/" + strings.TrimLeft(identifier, "/")
}
