package npr

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// /yyyy/mm/dd/id/slug and /blogs/name/yyyy/mm/dd/id/slug
	datedStoryURL = regexp.MustCompile(`https?://[^\s/]*npr\.org/((([^/]*/){3,5})([0-9]{8,12}))/.*`)
	// /templates/story/story.php?storyId=id
	storyIDParamURL = regexp.MustCompile(`https?://[^\s/]*npr\.org/([^&\s<]*storyId=([0-9]+)).*`)
)

// ParseStoryID turns a story id or an npr.org story URL into a story id.
// It returns false when the input names no story.
func ParseStoryID(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	if isNumeric(input) {
		return input, true
	}
	if m := datedStoryURL.FindStringSubmatch(input); m != nil {
		return m[4], true
	}
	if m := storyIDParamURL.FindStringSubmatch(input); m != nil {
		return m[2], true
	}
	return "", false
}

func isNumeric(s string) bool {
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}
