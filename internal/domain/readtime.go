package domain

import "strings"

// WordsPerMinute is the reading speed used for read-time estimates.
const WordsPerMinute = 200

// EstimateReadTime estimates the minutes needed to read content.
// Word count is a plain whitespace split of the raw markup string,
// divided by WordsPerMinute and rounded up, with a floor of one minute.
// Pure function, safe to call from anywhere.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
