package recipe

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/internal/metrics"
)

// imageFormats maps accepted data URI subtypes to encoder formats.
var imageFormats = map[string]imaging.Format{
	"jpeg": imaging.JPEG,
	"jpg":  imaging.JPEG,
	"png":  imaging.PNG,
	"gif":  imaging.GIF,
}

var errInvalidImage = domain.NewValidationError("image",
	"Upload a valid image. The file you uploaded was either not an image or a corrupted image.")

// decodedImage is a validated image ready for storage.
type decodedImage struct {
	ext         string
	contentType string
	data        []byte
}

// decodeImage parses a "data:image/<ext>;base64,<payload>" URI, checks that
// the payload really is an image of that format and shrinks it to fit the
// configured bounds.
func (s *Service) decodeImage(uri string) (*decodedImage, error) {
	header, payload, ok := strings.Cut(uri, ";base64,")
	if !ok || !strings.HasPrefix(header, "data:image/") {
		return nil, errInvalidImage
	}

	ext := strings.ToLower(strings.TrimPrefix(header, "data:image/"))
	format, ok := imageFormats[ext]
	if !ok {
		return nil, domain.NewValidationError("image", fmt.Sprintf("Unsupported image format %q.", ext))
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errInvalidImage
	}
	if s.imageCfg.MaxBytes > 0 && len(raw) > s.imageCfg.MaxBytes {
		return nil, domain.NewValidationError("image",
			fmt.Sprintf("Ensure the image is no larger than %d bytes.", s.imageCfg.MaxBytes))
	}

	_, actual, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, errInvalidImage
	}
	if f, err := imaging.FormatFromExtension(actual); err != nil || f != format {
		return nil, domain.NewValidationError("image",
			fmt.Sprintf("Image content is %q, not the declared %q.", actual, ext))
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errInvalidImage
	}

	out := &decodedImage{ext: ext, contentType: "image/" + ext, data: raw}
	if format == imaging.JPEG {
		out.contentType = "image/jpeg"
	}

	b := img.Bounds()
	if s.imageCfg.MaxWidth > 0 && s.imageCfg.MaxHeight > 0 &&
		(b.Dx() > s.imageCfg.MaxWidth || b.Dy() > s.imageCfg.MaxHeight) {
		img = imaging.Fit(img, s.imageCfg.MaxWidth, s.imageCfg.MaxHeight, imaging.Lanczos)
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, format); err != nil {
			return nil, fmt.Errorf("encode resized image: %w", err)
		}
		out.data = buf.Bytes()
	}

	return out, nil
}

// storeImage saves the image under recipes/<uuid>.<ext> and returns its key
// and URL.
func (s *Service) storeImage(ctx context.Context, img *decodedImage) (key, url string, err error) {
	key = domain.RecipeImagePrefix + uuid.NewString() + "." + img.ext

	url, err = s.images.Put(ctx, key, img.data, img.contentType)
	if err != nil {
		return "", "", fmt.Errorf("store image: %w", err)
	}

	metrics.ImagesStored.WithLabelValues(img.ext).Inc()
	return key, url, nil
}

// discardImage removes an image whose recipe write was rolled back. A failure
// only leaves an orphaned object, so it is logged and not returned.
func (s *Service) discardImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.images.Delete(context.WithoutCancel(ctx), key); err != nil {
		s.log.WarnContext(ctx, "discard image failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}
