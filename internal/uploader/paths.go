package uploader

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"

	"smart-wedding-backend/internal/transcode"
)

// assetPaths builds the two storage paths for one file:
//
//	{slug}/original/{unixMillis}_{token}_{filename}
//	{slug}/compressed/{unixMillis}_{token}.jpg
//
// The archival path keeps the original extension via the embedded filename;
// the display path is normalized to the display format's extension. The
// timestamp plus random token makes collisions across guests implausible.
func assetPaths(slug, filename string) (string, string) {
	ts := time.Now().UnixMilli()
	token := randomToken()
	safe := sanitizeFilename(filename)

	original := fmt.Sprintf("%s/original/%d_%s_%s", slug, ts, token, safe)
	display := fmt.Sprintf("%s/compressed/%d_%s%s", slug, ts, token, transcode.DisplayExtension)
	return original, display
}

func randomToken() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand only fails when the platform entropy source is
		// broken; fall back to the nanosecond clock.
		return fmt.Sprintf("%x", time.Now().UnixNano()&0xffffffff)
	}
	return hex.EncodeToString(b[:])
}

// sanitizeFilename strips any client-supplied directory structure and
// whitespace so the name is safe inside a storage path.
func sanitizeFilename(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.ReplaceAll(base, " ", "_")
	if base == "." || base == ".." || base == "/" || base == "" {
		return "upload"
	}
	return base
}
