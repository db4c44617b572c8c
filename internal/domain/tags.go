package domain

import (
	"sort"
	"strings"
	"unicode"
)

// NormalizeTag returns the comparison key for a tag.
// The key is used for equality and grouping only, never displayed.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// Slugify converts free text into a URL-safe slug.
// "CI/CD" -> "ci-cd", "  Docker   Compose " -> "docker-compose".
// Idempotent: Slugify(Slugify(t)) == Slugify(t).
func Slugify(tag string) string {
	s := strings.ToLower(strings.TrimSpace(tag))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '/' || unicode.IsSpace(r):
			b.WriteByte('-')
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-':
			b.WriteRune(r)
		}
		// Anything else is dropped.
	}

	return strings.Trim(collapseDashes(b.String()), "-")
}

// collapseDashes replaces runs of '-' with a single '-'.
func collapseDashes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevDash := false
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			if prevDash {
				continue
			}
			prevDash = true
		} else {
			prevDash = false
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// CollectCanonicalTags scans every article's tag list in corpus order and
// picks one display form per normalized key: the first original string seen.
// Later variants ("docker", " DOCKER ") fold into that key without changing
// the display form. Tags that normalize to an empty key are dropped since
// they cannot be slugified meaningfully.
//
// The result is sorted case-insensitively, ascending.
func CollectCanonicalTags(articles []*Article) []string {
	seen := make(map[string]string) // normalized key -> first-seen display form

	for _, a := range articles {
		if a == nil {
			continue
		}
		for _, tag := range a.Tags {
			key := NormalizeTag(tag)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; !ok {
				seen[key] = strings.TrimSpace(tag)
			}
		}
	}

	tags := make([]string, 0, len(seen))
	for _, display := range seen {
		tags = append(tags, display)
	}

	sort.Slice(tags, func(i, j int) bool {
		li, lj := strings.ToLower(tags[i]), strings.ToLower(tags[j])
		if li != lj {
			return li < lj
		}
		return tags[i] < tags[j]
	})

	return tags
}
