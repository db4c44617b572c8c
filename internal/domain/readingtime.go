package domain

import "strings"

// DefaultWordsPerMinute is the assumed reading speed.
const DefaultWordsPerMinute = 200

// EstimateReadingTime returns the reading time of a body in whole minutes,
// rounded up. A non-empty body never reports less than one minute; an empty
// (or whitespace-only) body reports zero. wordsPerMinute values <= 0 fall
// back to DefaultWordsPerMinute.
func EstimateReadingTime(body string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}

	words := len(strings.Fields(body))
	if words == 0 {
		return 0
	}

	return (words + wordsPerMinute - 1) / wordsPerMinute
}
