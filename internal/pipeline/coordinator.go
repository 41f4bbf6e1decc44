// Package pipeline coordinates loading, transforming and saving images.
// The transform engine itself is stateless; all retained state (the
// original image and the latest result) lives in the models repository
// owned by the coordinator.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"

	"lumaforge/internal/config"
	"lumaforge/internal/logger"
	"lumaforge/internal/models"
)

type Coordinator struct {
	repo     *models.Repository
	registry *Registry
	loader   *imageLoader
	saver    *imageSaver
	logger   logger.Logger
}

func NewCoordinator(log logger.Logger, cfg config.Config) *Coordinator {
	return &Coordinator{
		repo:     models.NewRepository(),
		registry: NewRegistry(),
		loader:   &imageLoader{logger: log},
		saver:    &imageSaver{logger: log, jpegQuality: cfg.Output.JPEGQuality},
		logger:   log,
	}
}

// LoadImage decodes a new original image and resets the result to it.
func (c *Coordinator) LoadImage(reader fyne.URIReadCloser) (*models.ImageData, error) {
	imageData, err := c.loader.LoadFromReader(reader)
	if err != nil {
		return nil, err
	}

	c.repo.SetOriginal(imageData)
	return imageData, nil
}

// ApplyOperation runs the named transform against the original image
// and stores the result as the latest processed image. Transforms
// always start from the original, so successive operations replace
// rather than stack. Parameters the caller omits fall back to the
// operation's registered defaults.
func (c *Coordinator) ApplyOperation(ctx context.Context, name string, params map[string]interface{}) (*models.ImageData, error) {
	original := c.repo.Original()
	if original == nil {
		return nil, fmt.Errorf("no image loaded")
	}

	op, err := c.registry.Get(name)
	if err != nil {
		return nil, err
	}

	merged := op.DefaultParameters()
	for k, v := range params {
		merged[k] = v
	}

	start := time.Now()
	result, err := op.Apply(ctx, original.Image, merged)
	if err != nil {
		return nil, fmt.Errorf("operation %q failed: %w", name, err)
	}

	processed := models.NewImageData(result, original.SourceURI)
	c.repo.SetProcessed(processed)

	c.logger.Info("Coordinator", "operation applied", map[string]interface{}{
		"operation": name,
		"size":      fmt.Sprintf("%dx%d", processed.Width, processed.Height),
		"pixels":    processed.Format.String(),
		"dur":       time.Since(start).String(),
	})

	return processed, nil
}

// SaveImage writes the latest processed image through the writer.
func (c *Coordinator) SaveImage(writer fyne.URIWriteCloser) error {
	processed := c.repo.Processed()
	if processed == nil {
		return fmt.Errorf("no processed image to save")
	}
	return c.saver.SaveToWriter(writer, processed)
}

// Reset restores the processed image to the original and returns it,
// or nil when nothing is loaded.
func (c *Coordinator) Reset() *models.ImageData {
	if !c.repo.Reset() {
		return nil
	}
	c.logger.Debug("Coordinator", "reset to original", nil)
	return c.repo.Processed()
}

// Original returns the loaded image, or nil before the first load.
func (c *Coordinator) Original() *models.ImageData {
	return c.repo.Original()
}

// Processed returns the latest result, or nil before the first load.
func (c *Coordinator) Processed() *models.ImageData {
	return c.repo.Processed()
}

// Operations lists the registered operation names.
func (c *Coordinator) Operations() []string {
	return c.registry.Names()
}
