package domain

import "regexp"

// ExcerptLength is the maximum excerpt length in characters.
const ExcerptLength = 150

// markupTags matches markup tags like <p> or </h1> for stripping.
var markupTags = regexp.MustCompile(`<[^>]*>`)

// StripMarkup removes markup tags from content, leaving plain text.
// The content format is otherwise opaque; this is the only transformation
// ever applied to it.
func StripMarkup(content string) string {
	return markupTags.ReplaceAllString(content, "")
}

// Excerpt derives a summary from markup content: strip tags, then cut to
// ExcerptLength characters with an ellipsis when truncated.
func Excerpt(content string) string {
	plain := []rune(StripMarkup(content))
	if len(plain) <= ExcerptLength {
		return string(plain)
	}
	return string(plain[:ExcerptLength]) + "..."
}
