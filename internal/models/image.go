package models

import (
	"image"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// PixelFormat tags the channel layout of an ImageData. Threshold
// operations change it from RGB to grayscale, so callers must check the
// tag instead of assuming the format survives a transform.
type PixelFormat int

const (
	FormatRGB PixelFormat = iota
	FormatGray
)

func (f PixelFormat) String() string {
	switch f {
	case FormatGray:
		return "grayscale"
	default:
		return "rgb"
	}
}

// FormatOf derives the pixel format tag from the concrete image type.
func FormatOf(img image.Image) PixelFormat {
	if _, ok := img.(*image.Gray); ok {
		return FormatGray
	}
	return FormatRGB
}

// ImageData couples a decoded image with its display metadata.
type ImageData struct {
	Image     image.Image
	Width     int
	Height    int
	Format    PixelFormat
	SourceURI fyne.URI
	LoadTime  time.Time
}

// NewImageData wraps img with dimensions and format derived from it.
func NewImageData(img image.Image, uri fyne.URI) *ImageData {
	bounds := img.Bounds()
	return &ImageData{
		Image:     img,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Format:    FormatOf(img),
		SourceURI: uri,
		LoadTime:  time.Now(),
	}
}

// Repository holds the original image and the most recent processing
// result. Loading replaces both; Reset restores the result to the
// original. There is no deeper history.
type Repository struct {
	mu        sync.RWMutex
	original  *ImageData
	processed *ImageData
}

func NewRepository() *Repository {
	return &Repository{}
}

// SetOriginal stores a freshly loaded image and resets the processed
// result to it.
func (r *Repository) SetOriginal(img *ImageData) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.original = img
	r.processed = img
}

// Original returns the loaded image, or nil before the first load.
func (r *Repository) Original() *ImageData {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.original
}

// SetProcessed stores the latest transform result.
func (r *Repository) SetProcessed(img *ImageData) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.processed = img
}

// Processed returns the latest result, or nil before the first load.
func (r *Repository) Processed() *ImageData {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.processed
}

// Reset restores the processed image to the original. It reports
// whether an original was present to restore.
func (r *Repository) Reset() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.original == nil {
		return false
	}
	r.processed = r.original
	return true
}
