package domain

import (
	"reflect"
	"testing"
)

func TestScoreRelated(t *testing.T) {
	w := DefaultWeights()

	tests := []struct {
		name      string
		ref       *Article
		candidate *Article
		want      int
	}{
		{
			name:      "category and one shared tag",
			ref:       &Article{ID: "r", Category: CategoryDocker, Tags: []string{"a", "b"}},
			candidate: &Article{ID: "c", Category: CategoryDocker, Tags: []string{"a", "c"}},
			want:      12,
		},
		{
			name:      "category only",
			ref:       &Article{ID: "r", Category: CategoryLinux},
			candidate: &Article{ID: "c", Category: CategoryLinux},
			want:      10,
		},
		{
			name:      "tags only",
			ref:       &Article{ID: "r", Category: CategoryLinux, Tags: []string{"x", "y"}},
			candidate: &Article{ID: "c", Category: CategoryDevops, Tags: []string{"y", "x"}},
			want:      4,
		},
		{
			name:      "no overlap",
			ref:       &Article{ID: "r", Category: CategoryLinux, Tags: []string{"x"}},
			candidate: &Article{ID: "c", Category: CategoryDevops, Tags: []string{"y"}},
			want:      0,
		},
		{
			name:      "duplicate tags count once",
			ref:       &Article{ID: "r", Category: CategoryDevops, Tags: []string{"ansible"}},
			candidate: &Article{ID: "c", Category: CategorySecurity, Tags: []string{"ansible", "Ansible", " ANSIBLE "}},
			want:      2,
		},
		{
			name:      "tag match is case and whitespace insensitive",
			ref:       &Article{ID: "r", Category: CategorySecurity, Tags: []string{"Fail2ban"}},
			candidate: &Article{ID: "c", Category: CategoryDevops, Tags: []string{" fail2ban "}},
			want:      2,
		},
		{
			name:      "nil candidate",
			ref:       &Article{ID: "r"},
			candidate: nil,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreRelated(tt.ref, tt.candidate, w)
			if got != tt.want {
				t.Errorf("ScoreRelated() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRankRelatedExcludesSelf(t *testing.T) {
	ref := &Article{ID: "self", Category: CategoryDocker, Tags: []string{"a"}}
	pool := []*Article{
		ref,
		{ID: "other", Category: CategoryDocker, Tags: []string{"a"}},
	}

	got := RankRelated(ref, pool, 10, DefaultWeights())

	for _, a := range got {
		if a.ID == ref.ID {
			t.Errorf("RankRelated() returned the reference article itself")
		}
	}
	if len(got) != 1 {
		t.Errorf("RankRelated() returned %d articles, want 1", len(got))
	}
}

func TestRankRelatedSkipsDrafts(t *testing.T) {
	ref := &Article{ID: "ref", Category: CategoryDocker}
	pool := []*Article{
		{ID: "draft", Category: CategoryDocker, Draft: true},
		{ID: "published", Category: CategoryDocker},
	}

	got := RankRelated(ref, pool, 10, DefaultWeights())

	if len(got) != 1 || got[0].ID != "published" {
		t.Errorf("RankRelated() = %v, want only the published article", ids(got))
	}
}

func TestRankRelatedOrdering(t *testing.T) {
	ref := &Article{ID: "ref", Category: CategoryDevops, Tags: []string{"ansible", "ci"}}
	pool := []*Article{
		{ID: "zero", Category: CategoryLinux, Tags: []string{"zsh"}},
		{ID: "two-tags", Category: CategoryLinux, Tags: []string{"ansible", "ci"}},
		{ID: "category-and-tag", Category: CategoryDevops, Tags: []string{"ci"}},
	}

	got := RankRelated(ref, pool, 10, DefaultWeights())
	want := []string{"category-and-tag", "two-tags", "zero"} // 12, 4, 0

	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("RankRelated() order = %v, want %v", ids(got), want)
	}
}

func TestRankRelatedStableTies(t *testing.T) {
	ref := &Article{ID: "ref", Category: CategoryDocker, Tags: []string{"compose"}}
	pool := []*Article{
		{ID: "first", Category: CategoryDocker},
		{ID: "second", Category: CategoryDocker},
		{ID: "third", Category: CategoryDocker},
	}

	// All candidates score 10: pool order must be preserved.
	got := RankRelated(ref, pool, 10, DefaultWeights())
	want := []string{"first", "second", "third"}

	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("RankRelated() tie order = %v, want pool order %v", ids(got), want)
	}
}

func TestRankRelatedZeroScoreFillsQuota(t *testing.T) {
	ref := &Article{ID: "ref", Category: CategoryDocker, Tags: []string{"compose"}}
	pool := []*Article{
		{ID: "unrelated-1", Category: CategoryLinux},
		{ID: "related", Category: CategoryDocker, Tags: []string{"compose"}},
		{ID: "unrelated-2", Category: CategorySecurity},
	}

	got := RankRelated(ref, pool, 3, DefaultWeights())
	want := []string{"related", "unrelated-1", "unrelated-2"}

	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("RankRelated() = %v, want %v", ids(got), want)
	}
}

func TestRankRelatedLimits(t *testing.T) {
	ref := &Article{ID: "ref", Category: CategoryDocker}
	pool := []*Article{
		ref,
		{ID: "a", Category: CategoryDocker},
		{ID: "b", Category: CategoryDocker},
		{ID: "c", Category: CategoryLinux},
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero limit", 0, 0},
		{"negative limit", -1, 0},
		{"limit under pool size", 2, 2},
		{"limit over pool size", 1000, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RankRelated(ref, pool, tt.limit, DefaultWeights())
			if len(got) != tt.want {
				t.Errorf("RankRelated(limit=%d) returned %d articles, want %d", tt.limit, len(got), tt.want)
			}
		})
	}
}

func TestRankRelatedEmptyPool(t *testing.T) {
	ref := &Article{ID: "ref"}

	if got := RankRelated(ref, nil, 3, DefaultWeights()); len(got) != 0 {
		t.Errorf("RankRelated() on empty pool = %v, want empty", ids(got))
	}
}

func TestRankRelatedDeterministic(t *testing.T) {
	ref := &Article{ID: "ref", Category: CategoryDevops, Tags: []string{"ci", "ansible"}}
	pool := []*Article{
		{ID: "a", Category: CategoryDevops, Tags: []string{"ci"}},
		{ID: "b", Category: CategoryLinux, Tags: []string{"ci", "ansible"}},
		{ID: "c", Category: CategoryDevops, Tags: []string{"ansible"}},
		{ID: "d", Category: CategorySecurity},
	}

	first := ids(RankRelated(ref, pool, 10, DefaultWeights()))
	for i := 0; i < 10; i++ {
		if got := ids(RankRelated(ref, pool, 10, DefaultWeights())); !reflect.DeepEqual(got, first) {
			t.Fatalf("RankRelated() not deterministic: %v vs %v", got, first)
		}
	}
}

func TestRankRelatedCustomWeights(t *testing.T) {
	ref := &Article{ID: "ref", Category: CategoryDocker, Tags: []string{"a"}}
	candidate := &Article{ID: "c", Category: CategoryDocker, Tags: []string{"a"}}

	w := Weights{Category: 1, Tag: 100}
	if got := ScoreRelated(ref, candidate, w); got != 101 {
		t.Errorf("ScoreRelated() with custom weights = %d, want 101", got)
	}
}

func ids(articles []*Article) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.ID)
	}
	return out
}
