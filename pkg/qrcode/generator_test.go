package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/showcase/pkg/qrcode"
)

const uri = "mailto:artist@example.com?subject=Painting%20Inquiry%3A%20Golden%20Fields&body=Name%3A%20John%20Doe"

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		for _, content := range []string{"", "   \t\n"} {
			result, err := qrcode.Generate(content, 128)
			require.ErrorIs(t, err, qrcode.ErrEmptyContent)
			assert.Nil(t, result)
		}
	})

	t.Run("content over capacity", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.Generate(strings.Repeat("a", qrcode.MaxContentLength+1), 128)
		require.ErrorIs(t, err, qrcode.ErrContentTooLong)
		assert.Nil(t, result)
	})

	t.Run("png of requested size", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.Generate(uri, 200)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(result))
		require.NoError(t, err)
		assert.Equal(t, 200, img.Bounds().Dx())
		assert.Equal(t, 200, img.Bounds().Dy())
	})

	t.Run("default size", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.Generate(uri, 0)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(result))
		require.NoError(t, err)
		assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dx())
	})
}

func TestDataURI(t *testing.T) {
	t.Parallel()

	src, err := qrcode.DataURI(uri, 128)
	require.NoError(t, err)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(src, prefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(src, prefix))
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	_, err = qrcode.DataURI("", 128)
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
}
