// Package codec re-encodes image files between formats.
//
// Decoding covers png, jpeg, gif (standard library) and webp
// (github.com/gen2brain/webp, a pure-Go libwebp build). Encoding covers the
// configurable target formats: png, jpeg/jpg, and webp.
package codec

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Register the standard decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gen2brain/webp"

	"github.com/arthur-debert/shrinkwrap/pkg/errors"
)

// Format is a supported target image format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatJPG  Format = "jpg"
	FormatWebP Format = "webp"
)

// ParseFormat validates a configured format string.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatJPEG:
		return FormatJPEG, nil
	case FormatJPG:
		return FormatJPG, nil
	case FormatWebP:
		return FormatWebP, nil
	}
	return "", errors.Newf(errors.ErrConfigValid, "unsupported format %q (want png, jpeg, jpg, or webp)", s)
}

// Extension returns the file extension for converted files. Format jpg maps
// to ".jpg"; every other format maps to ".<format>".
func (f Format) Extension() string {
	return "." + string(f)
}

// Tier is a named quality tier.
type Tier string

const (
	TierSmall    Tier = "small"
	TierSmallest Tier = "smallest"
)

// ParseTier validates a configured quality tier.
func ParseTier(s string) (Tier, error) {
	switch Tier(strings.ToLower(s)) {
	case TierSmall:
		return TierSmall, nil
	case TierSmallest:
		return TierSmallest, nil
	}
	return "", errors.Newf(errors.ErrConfigValid, "unsupported quality tier %q (want small or smallest)", s)
}

// Quality maps the tier to an encoder quality value.
func (t Tier) Quality() int {
	if t == TierSmallest {
		return 60
	}
	return 80
}

// Encoder produces an encoded copy of a source image at a destination path.
type Encoder interface {
	// Encode reads the image at src, re-encodes it as format at the given
	// quality in [0,100], and writes the result to dest.
	Encode(src string, format Format, quality int, dest string) error
}

type imageEncoder struct{}

// New returns the production encoder.
func New() Encoder {
	return &imageEncoder{}
}

func (e *imageEncoder) Encode(src string, format Format, quality int, dest string) error {
	if quality < 0 {
		quality = 0
	}
	if quality > 100 {
		quality = 100
	}

	img, err := decodeFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrEncode, "failed to decode %s", src)
	}

	out, err := os.Create(dest)
	if err != nil {
		return errors.Wrapf(err, errors.ErrEncode, "failed to create %s", dest)
	}

	if err := encodeImage(out, img, format, quality); err != nil {
		out.Close()
		os.Remove(dest)
		return errors.Wrapf(err, errors.ErrEncode, "failed to encode %s as %s", src, format)
	}

	if err := out.Close(); err != nil {
		os.Remove(dest)
		return errors.Wrapf(err, errors.ErrEncode, "failed to flush %s", dest)
	}
	return nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// image.Decode does not know about webp, so dispatch on extension.
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		return webp.Decode(f)
	}

	img, _, err := image.Decode(f)
	return img, err
}

func encodeImage(w io.Writer, img image.Image, format Format, quality int) error {
	switch format {
	case FormatPNG:
		// PNG is lossless; the quality value maps to compression effort only.
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case FormatJPEG, FormatJPG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case FormatWebP:
		return webp.Encode(w, img, webp.Options{Quality: quality})
	}
	return fmt.Errorf("unsupported format %q", format)
}
