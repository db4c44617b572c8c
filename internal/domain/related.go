package domain

const (
	// Scoring weights
	DefaultCategoryWeight = 10
	DefaultTagWeight      = 2

	// Default number of related articles shown under a post
	DefaultRelatedLimit = 3
)

// Weights holds the relevance scoring policy.
// The values are policy constants, not invariants; callers may tune them.
type Weights struct {
	Category int // added once when categories match
	Tag      int // added per shared normalized tag key
}

// DefaultWeights returns the standard scoring policy.
func DefaultWeights() Weights {
	return Weights{Category: DefaultCategoryWeight, Tag: DefaultTagWeight}
}

// RelatedCandidate represents a candidate article with its relevance score
type RelatedCandidate struct {
	Article *Article
	Score   int
}

// ScoreRelated calculates the relevance score of a candidate against a
// reference article. The score is additive: a fixed weight for a category
// match plus a per-tag weight for every normalized tag key the two articles
// share. Duplicate tags within a record count once.
func ScoreRelated(ref, candidate *Article, w Weights) int {
	if ref == nil || candidate == nil {
		return 0
	}

	score := 0

	if candidate.Category == ref.Category {
		score += w.Category
	}

	score += w.Tag * sharedTagCount(tagKeySet(ref.Tags), candidate.Tags)

	return score
}

// tagKeySet builds the set of normalized tag keys for a tag list.
func tagKeySet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		key := NormalizeTag(tag)
		if key == "" {
			continue
		}
		set[key] = struct{}{}
	}
	return set
}

// sharedTagCount counts distinct normalized keys of tags present in refKeys.
func sharedTagCount(refKeys map[string]struct{}, tags []string) int {
	counted := make(map[string]struct{}, len(tags))
	shared := 0
	for _, tag := range tags {
		key := NormalizeTag(tag)
		if key == "" {
			continue
		}
		if _, dup := counted[key]; dup {
			continue
		}
		counted[key] = struct{}{}
		if _, ok := refKeys[key]; ok {
			shared++
		}
	}
	return shared
}

// RankRelated ranks a candidate pool by relevance to a reference article and
// returns up to limit articles, highest score first.
//
// The reference itself is excluded by ID, drafts are skipped, and zero-score
// candidates still fill the quota when higher-scored ones run out. Equal
// scores preserve the pool's original relative order, so a recency-ordered
// pool stays recency-ordered within each score band. Identical inputs always
// produce identical output.
func RankRelated(ref *Article, pool []*Article, limit int, w Weights) []*Article {
	if ref == nil || limit <= 0 {
		return nil
	}

	refKeys := tagKeySet(ref.Tags)

	candidates := make([]*RelatedCandidate, 0, len(pool))
	for _, candidate := range pool {
		if candidate == nil || candidate.Draft {
			continue
		}
		if candidate.ID == ref.ID {
			continue
		}

		score := 0
		if candidate.Category == ref.Category {
			score += w.Category
		}
		score += w.Tag * sharedTagCount(refKeys, candidate.Tags)

		candidates = append(candidates, &RelatedCandidate{
			Article: candidate,
			Score:   score,
		})
	}

	sortRelatedCandidates(candidates)

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	related := make([]*Article, 0, len(candidates))
	for _, c := range candidates {
		related = append(related, c.Article)
	}
	return related
}

// sortRelatedCandidates sorts candidates by score (descending).
// The sort is stable: equal scores keep their original relative order.
func sortRelatedCandidates(candidates []*RelatedCandidate) {
	// Simple bubble sort (fine for small lists, and stable)
	n := len(candidates)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if candidates[j].Score < candidates[j+1].Score {
				candidates[j], candidates[j+1] = candidates[j+1], candidates[j]
			}
		}
	}
}
