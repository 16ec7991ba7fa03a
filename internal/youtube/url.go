package youtube

import (
	"fmt"
	"strings"
)

// ExtractVideoID returns everything after the first "=" of a watch URL.
// Later "=" characters are kept verbatim. No "=" yields "".
func ExtractVideoID(rawURL string) string {
	_, id, found := strings.Cut(rawURL, "=")
	if !found {
		return ""
	}
	return id
}

// ThumbnailURL is the predictable default thumbnail for a video
func ThumbnailURL(videoID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/0.jpg", videoID)
}
