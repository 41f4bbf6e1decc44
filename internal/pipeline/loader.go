package pipeline

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"fyne.io/fyne/v2"

	"lumaforge/internal/logger"
	"lumaforge/internal/models"
)

type imageLoader struct {
	logger logger.Logger
}

// LoadFromReader decodes an image from an open URI reader. Any format
// registered with the image package is accepted: png, jpeg, gif plus
// bmp, tiff and webp through golang.org/x/image.
func (l *imageLoader) LoadFromReader(reader fyne.URIReadCloser) (*models.ImageData, error) {
	uri := reader.URI()

	l.logger.Debug("ImageLoader", "loading image", map[string]interface{}{
		"path":      uri.Path(),
		"extension": strings.ToLower(uri.Extension()),
	})

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return l.LoadFromBytes(data, uri)
}

func (l *imageLoader) LoadFromBytes(data []byte, uri fyne.URI) (*models.ImageData, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	imageData := models.NewImageData(img, uri)

	l.logger.Info("ImageLoader", "image loaded", map[string]interface{}{
		"format":     format,
		"width":      imageData.Width,
		"height":     imageData.Height,
		"size_bytes": len(data),
	})

	return imageData, nil
}
