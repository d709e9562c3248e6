package libs

import (
	"fmt"
	"log"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
)

// ImageResolver turns Cloudinary public ids into delivery URLs. Absolute URLs
// and site-relative paths pass through unchanged, as does everything when
// Cloudinary is not configured.
type ImageResolver struct {
	cld *cloudinary.Cloudinary
}

func NewImageResolver(cloudinaryURL, cloudName, apiKey, apiSecret string) (*ImageResolver, error) {
	if cloudName != "" && apiKey != "" && apiSecret != "" {
		cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
		if err != nil {
			return nil, fmt.Errorf("cloudinary init from params fail: %w", err)
		}
		return &ImageResolver{cld: cld}, nil
	}

	if cloudinaryURL != "" {
		cld, err := cloudinary.NewFromURL(cloudinaryURL)
		if err != nil {
			return nil, fmt.Errorf("cloudinary init from URL fail: %w", err)
		}
		return &ImageResolver{cld: cld}, nil
	}

	return &ImageResolver{}, nil
}

func (r *ImageResolver) Enabled() bool {
	return r != nil && r.cld != nil
}

func (r *ImageResolver) Resolve(ref string) string {
	if !r.Enabled() || ref == "" || strings.HasPrefix(ref, "/") || strings.Contains(ref, "://") {
		return ref
	}

	img, err := r.cld.Image(ref)
	if err != nil {
		log.Printf("[Cloudinary] Failed to build asset for %s: %v", ref, err)
		return ref
	}

	url, err := img.String()
	if err != nil {
		log.Printf("[Cloudinary] Failed to build URL for %s: %v", ref, err)
		return ref
	}
	return url
}
