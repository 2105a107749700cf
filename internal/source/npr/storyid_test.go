package npr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStoryID(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"1234567890", "1234567890", true},
		{" 42 ", "42", true},
		{"https://www.npr.org/2024/02/20/1232436783/some-slug", "1232436783", true},
		{"https://www.npr.org/sections/health-shots/2024/02/20/1232436783/some-slug", "1232436783", true},
		{"http://www.npr.org/templates/story/story.php?storyId=129358765", "129358765", true},
		{"https://example.com/2024/02/20/1232436783/slug", "", false},
		{"not a story", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseStoryID(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
