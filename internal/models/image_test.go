package models

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatGray, FormatOf(image.NewGray(image.Rect(0, 0, 1, 1))))
	assert.Equal(t, FormatRGB, FormatOf(image.NewRGBA(image.Rect(0, 0, 1, 1))))
	assert.Equal(t, FormatRGB, FormatOf(image.NewNRGBA(image.Rect(0, 0, 1, 1))))
}

func TestNewImageDataDerivesMetadata(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 7, 3))
	data := NewImageData(img, nil)

	assert.Equal(t, 7, data.Width)
	assert.Equal(t, 3, data.Height)
	assert.Equal(t, FormatGray, data.Format)
	assert.False(t, data.LoadTime.IsZero())
}

func TestRepositoryLoadResetsProcessed(t *testing.T) {
	repo := NewRepository()
	require.Nil(t, repo.Original())
	require.Nil(t, repo.Processed())

	first := NewImageData(image.NewRGBA(image.Rect(0, 0, 2, 2)), nil)
	repo.SetOriginal(first)
	assert.Same(t, first, repo.Original())
	assert.Same(t, first, repo.Processed())

	result := NewImageData(image.NewGray(image.Rect(0, 0, 2, 2)), nil)
	repo.SetProcessed(result)
	assert.Same(t, result, repo.Processed())

	second := NewImageData(image.NewRGBA(image.Rect(0, 0, 4, 4)), nil)
	repo.SetOriginal(second)
	assert.Same(t, second, repo.Processed(), "loading replaces the stale result")
}

func TestRepositoryReset(t *testing.T) {
	repo := NewRepository()
	assert.False(t, repo.Reset(), "nothing to reset before a load")

	original := NewImageData(image.NewRGBA(image.Rect(0, 0, 2, 2)), nil)
	repo.SetOriginal(original)
	repo.SetProcessed(NewImageData(image.NewGray(image.Rect(0, 0, 2, 2)), nil))

	assert.True(t, repo.Reset())
	assert.Same(t, original, repo.Processed())
}
