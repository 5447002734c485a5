package notion

import "strings"

// PageIDFromURL extracts the content id from a Notion page URL. Notion
// appends the id as the last dash-separated part of the final path
// segment, e.g. "https://notion.so/ws/My-Page-abc123" -> "abc123".
func PageIDFromURL(pageURL string) string {
	segments := strings.Split(pageURL, "/")
	last := segments[len(segments)-1]
	parts := strings.Split(last, "-")
	return parts[len(parts)-1]
}
