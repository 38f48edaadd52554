package invoice

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/draw"

	"storefront-docs/internal/core/domain/models"
	"storefront-docs/internal/core/domain/types"
)

// Logos wider than this are downscaled before embedding
const maxLogoWidth = 600

// LogoResult is the outcome of the logo pipeline: either a normalized
// PNG to embed in the header, or a reason to render the brand name as
// text instead.
type LogoResult struct {
	PNG    []byte
	Reason string
}

func (r LogoResult) Embedded() bool {
	return len(r.PNG) > 0
}

// resolveLogo runs the fetch -> decode -> redraw -> encode pipeline.
// When no logo is configured, no fetch is attempted. Every failure mode
// collapses into the same text fallback; the decision is made only
// after a real attempt.
func (svc *Service) resolveLogo(ctx context.Context, branding models.Branding) LogoResult {
	if branding.LogoURL == "" {
		return LogoResult{Reason: "no logo configured"}
	}

	raw, err := svc.images.FetchImage(ctx, branding.LogoURL)
	if err != nil {
		svc.log.Debug(ctx, types.ActionLogoFallback, "logo fetch failed, falling back to text",
			"logo_url", branding.LogoURL,
			"reason", err.Error(),
		)
		return LogoResult{Reason: fmt.Sprintf("fetch failed: %v", err)}
	}

	normalized, err := rasterize(raw)
	if err != nil {
		svc.log.Debug(ctx, types.ActionLogoFallback, "logo conversion failed, falling back to text",
			"logo_url", branding.LogoURL,
			"reason", err.Error(),
		)
		return LogoResult{Reason: fmt.Sprintf("conversion failed: %v", err)}
	}

	svc.log.Debug(ctx, types.ActionLogoEmbedded, "logo normalized for embedding",
		"logo_url", branding.LogoURL,
		"size_bytes", len(normalized),
	)
	return LogoResult{PNG: normalized}
}

// rasterize normalizes an arbitrary downloaded image into a PNG by
// redrawing it onto a fresh raster buffer sized from the decoded
// dimensions. Oversized logos are downscaled to maxLogoWidth.
func rasterize(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode logo: %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("logo has empty dimensions")
	}

	if width > maxLogoWidth {
		height = height * maxLogoWidth / width
		if height == 0 {
			height = 1
		}
		width = maxLogoWidth
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(canvas, canvas.Bounds(), src, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode logo: %w", err)
	}

	return buf.Bytes(), nil
}
