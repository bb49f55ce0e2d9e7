package transcode_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"smart-wedding-backend/internal/transcode"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDisplay_ResizesLargeImage(t *testing.T) {
	src := encodePNG(t, 3200, 2400)

	out, err := transcode.Display(src)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	bounds := decoded.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), transcode.MaxDimension)
	assert.LessOrEqual(t, bounds.Dy(), transcode.MaxDimension)
	// Aspect ratio preserved: 4:3 in, 4:3 out.
	assert.Equal(t, 1600, bounds.Dx())
	assert.Equal(t, 1200, bounds.Dy())
}

func TestDisplay_DoesNotUpscaleSmallImage(t *testing.T) {
	src := encodePNG(t, 320, 240)

	out, err := transcode.Display(src)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 320, decoded.Bounds().Dx())
	assert.Equal(t, 240, decoded.Bounds().Dy())
}

func TestDisplay_PreservesInput(t *testing.T) {
	src := encodePNG(t, 64, 64)
	orig := make([]byte, len(src))
	copy(orig, src)

	_, err := transcode.Display(src)
	require.NoError(t, err)
	assert.Equal(t, orig, src)
}

func TestDisplay_UndecodableInput(t *testing.T) {
	out, err := transcode.Display([]byte("definitely not an image"))
	require.Error(t, err)
	assert.Nil(t, out)

	var terr *transcode.Error
	assert.ErrorAs(t, err, &terr)
}
