// Package transcode derives the compressed display variant shown in
// galleries. The archival copy is never touched; callers store the original
// bytes alongside the output of Display.
package transcode

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const (
	// MaxDimension bounds the longest edge of the display variant.
	MaxDimension = 1600
	// Quality is the JPEG quality used for the display variant.
	Quality = 80
)

// DisplayContentType is the MIME type of every display variant.
const DisplayContentType = "image/jpeg"

// DisplayExtension is the normalized file extension for display variants.
const DisplayExtension = ".jpg"

// Error reports input that could not be decoded or re-encoded as an image.
// It is attributed to a single file and never aborts a batch.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transcode: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Display re-encodes a guest-supplied image into the gallery display
// variant: auto-oriented, fitted within MaxDimension on both axes, JPEG at
// Quality. The input slice is not modified.
func Display(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("decode image: %w", err)}
	}

	// Fit keeps aspect ratio and never upscales smaller sources.
	img = imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(Quality)); err != nil {
		return nil, &Error{Err: fmt.Errorf("encode display variant: %w", err)}
	}

	return buf.Bytes(), nil
}
