package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nprstory/internal/domain"
)

func TestResolveImage(t *testing.T) {
	tests := []struct {
		name     string
		img      domain.Image
		wantURL  string
		portrait bool
	}{
		{
			name:    "enlargement",
			img:     domain.Image{Src: "https://x.org/src.jpg", Enlargement: "https://x.org/big.jpg"},
			wantURL: "https://x.org/big.jpg",
		},
		{
			name: "primary crop beats enlargement",
			img: domain.Image{
				Enlargement: "https://x.org/big.jpg",
				Crops: domain.Many[domain.Crop]{
					{Type: "wide", Src: "https://x.org/wide.jpg"},
					{Type: "standard", Src: "https://x.org/std.jpg", Primary: true},
				},
			},
			wantURL: "https://x.org/std.jpg",
		},
		{
			name:    "source fallback",
			img:     domain.Image{Src: "https://x.org/src.jpg"},
			wantURL: "https://x.org/src.jpg",
		},
		{
			name:    "npr media resized",
			img:     domain.Image{Src: "https://media.npr.org/a.jpg?s=1&c=2"},
			wantURL: "https://media.npr.org/a.jpg?s=6",
		},
		{
			name: "portrait custom crop",
			img: domain.Image{Crops: domain.Many[domain.Crop]{
				{Type: "custom", Src: "https://media.npr.org/p.jpg", Width: 400, Height: 800, Primary: true},
			}},
			wantURL:  "https://media.npr.org/p.jpg?s=12",
			portrait: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveImage(tt.img)
			assert.Equal(t, tt.wantURL, got.URL)
			assert.Equal(t, tt.portrait, got.Portrait)
		})
	}
}

func TestDownloadURL(t *testing.T) {
	t.Run("oversized enlargement crop", func(t *testing.T) {
		img := domain.Image{Crops: domain.Many[domain.Crop]{
			{Type: "enlargement", Src: "https://x.org/e.jpg", Width: 2400, Height: 1600},
		}}
		assert.Equal(t, "https://x.org/e.jpg?s=6", DownloadURL(img))
	})

	t.Run("existing query kept", func(t *testing.T) {
		img := domain.Image{Crops: domain.Many[domain.Crop]{
			{Type: "enlargement", Src: "https://x.org/e.jpg?v=1", Width: 2400, Height: 1600},
		}}
		assert.Equal(t, "https://x.org/e.jpg?v=1", DownloadURL(img))
	})

	t.Run("standard crop", func(t *testing.T) {
		img := domain.Image{Src: "https://x.org/s.jpg", Crops: domain.Many[domain.Crop]{
			{Type: "standard", Src: "https://x.org/std.jpg"},
		}}
		assert.Equal(t, "https://x.org/std.jpg", DownloadURL(img))
	})

	t.Run("source", func(t *testing.T) {
		assert.Equal(t, "https://x.org/s.jpg", DownloadURL(domain.Image{Src: "https://x.org/s.jpg"}))
	})
}
