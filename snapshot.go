package render3d

import (
	"image"
	"io"

	"github.com/HugoSmits86/nativewebp"
)

// EncodeWebP writes a captured frame as a lossless WebP image. Pair it
// with Renderer.Snapshot to produce scene-selection thumbnails.
func EncodeWebP(w io.Writer, frame image.Image) error {
	return nativewebp.Encode(w, frame, nil)
}
