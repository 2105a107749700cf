package layout

import (
	"strings"

	"nprstory/internal/domain"
)

const nprMediaHost = "media.npr.org"

// ResolvedImage is an image with the URL chosen for rendering.
type ResolvedImage struct {
	domain.Image
	URL      string
	Portrait bool
}

// ResolveImage picks the URL used when an image is placed inline: the
// enlargement, then the primary crop, then the raw source. Images hosted on
// media.npr.org are asked for a resized rendition.
func ResolveImage(img domain.Image) ResolvedImage {
	out := ResolvedImage{Image: img, URL: img.Enlargement}
	for _, crop := range img.Crops {
		if !crop.Primary {
			continue
		}
		out.URL = crop.Src
		if crop.Type == "custom" && crop.Height > crop.Width {
			out.Portrait = true
		}
		break
	}
	if out.URL == "" {
		out.URL = img.Src
	}
	if strings.Contains(out.URL, nprMediaHost) {
		if i := strings.Index(out.URL, "?"); i >= 0 {
			out.URL = out.URL[:i]
		}
		if out.Portrait {
			out.URL += "?s=12"
		} else {
			out.URL += "?s=6"
		}
	}
	return out
}

// DownloadURL picks the URL used when an image is sideloaded: the
// enlargement crop, then the standard crop, then the raw source.
// Oversized enlargements get a resize query unless one is already present.
func DownloadURL(img domain.Image) string {
	url := img.Enlargement
	for _, crop := range img.Crops {
		if crop.Type != "enlargement" {
			continue
		}
		url = crop.Src
		if (crop.Height > 1500 || crop.Width > 2000) && !strings.Contains(url, "?") {
			url += "?s=6"
		}
	}
	if url == "" {
		for _, crop := range img.Crops {
			if crop.Type == "standard" {
				url = crop.Src
			}
		}
	}
	if url == "" {
		url = img.Src
	}
	return url
}

// Credits joins the non-empty producer, provider and copyright fields.
func Credits(img domain.Image) []string {
	var out []string
	for _, v := range []string{img.Producer, img.Provider, img.Copyright} {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
