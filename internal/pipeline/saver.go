package pipeline

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"fyne.io/fyne/v2"

	"lumaforge/internal/logger"
	"lumaforge/internal/models"
)

type imageSaver struct {
	logger      logger.Logger
	jpegQuality int
}

// SaveToWriter encodes imageData in the format implied by the writer's
// URI extension. A missing or unknown extension falls back to PNG, the
// same default the load/save shell has always used.
func (s *imageSaver) SaveToWriter(writer fyne.URIWriteCloser, imageData *models.ImageData) error {
	if imageData == nil {
		return fmt.Errorf("no image data to save")
	}

	format := formatForExtension(strings.ToLower(writer.URI().Extension()))

	s.logger.Debug("ImageSaver", "saving image", map[string]interface{}{
		"format": format,
		"width":  imageData.Width,
		"height": imageData.Height,
		"pixels": imageData.Format.String(),
	})

	if err := s.encode(writer, imageData, format); err != nil {
		s.logger.Error("ImageSaver", err, map[string]interface{}{"format": format})
		return err
	}

	s.logger.Info("ImageSaver", "image saved", map[string]interface{}{
		"format": format,
		"path":   writer.URI().Path(),
	})

	return nil
}

func (s *imageSaver) encode(w io.Writer, imageData *models.ImageData, format string) error {
	switch format {
	case "jpeg":
		return jpeg.Encode(w, imageData.Image, &jpeg.Options{Quality: s.jpegQuality})
	case "bmp":
		return bmp.Encode(w, imageData.Image)
	case "tiff":
		return tiff.Encode(w, imageData.Image, nil)
	default:
		return png.Encode(w, imageData.Image)
	}
}

func formatForExtension(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	default:
		return "png"
	}
}
