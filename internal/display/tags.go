package display

import "strings"

// SplitTags turns the comma-separated string an edit form hands back
// into a clean slice: entries trimmed, empties from trailing commas or
// doubled separators dropped.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinTags renders a tag slice for editing. SplitTags(JoinTags(tags))
// gives back the original slice.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
