package redis

import "fmt"

const (
	// KeyPrefixPage is the prefix for cached rendered pages
	KeyPrefixPage = "quill:page:"
)

// PageKey returns the Redis key for a rendered page.
// Keys are scoped by snapshot generation so a reload naturally orphans every
// page cached against the previous corpus.
func PageKey(generation uint64, path string) string {
	return fmt.Sprintf("%s%d:%s", KeyPrefixPage, generation, path)
}
