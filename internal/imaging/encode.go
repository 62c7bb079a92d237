package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/pkg/errors"
)

// DefaultJPEGQuality is used by SaveFrame when no quality is given.
const DefaultJPEGQuality = 90

// EncodedFrame is a frame encoded as base64 PNG.
type EncodedFrame struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes img as a base64 PNG.
func EncodePNG(img image.Image) (*EncodedFrame, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "failed to encode frame")
	}

	bounds := img.Bounds()
	return &EncodedFrame{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SaveFrame writes img to path. The encoder is chosen from the file
// extension: .png, .jpg/.jpeg or .bmp. A jpegQuality outside 1-100 falls
// back to DefaultJPEGQuality.
func SaveFrame(path string, img image.Image, jpegQuality int) error {
	if jpegQuality < 1 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}

	var enc imgio.Encoder
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		enc = imgio.PNGEncoder()
	case ".jpg", ".jpeg":
		enc = imgio.JPEGEncoder(jpegQuality)
	case ".bmp":
		enc = imgio.BMPEncoder()
	default:
		return errors.Errorf("unsupported output format %q", filepath.Ext(path))
	}

	if err := imgio.Save(path, img, enc); err != nil {
		return errors.Wrapf(err, "failed to save frame %s", path)
	}
	return nil
}
