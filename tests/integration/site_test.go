package integration

import (
	"testing"
	"time"

	"github.com/MrSnakeDoc/quill/internal/domain"
	"github.com/MrSnakeDoc/quill/internal/index"
)

// TestPublishingScenario walks the full core path: load a mixed corpus,
// query it by category, and rank related articles for one of the results.
func TestPublishingScenario(t *testing.T) {
	day := func(n int) time.Time {
		return time.Date(2025, time.March, n, 0, 0, 0, 0, time.UTC)
	}

	corpus := []*domain.Article{
		{
			ID:          "ansible-rollouts",
			Title:       "Ansible rollouts",
			Category:    domain.CategoryDevops,
			Tags:        []string{"ansible", "ci"},
			PublishedAt: day(20),
		},
		{
			ID:          "pipeline-caching",
			Title:       "Pipeline caching",
			Category:    domain.CategoryDevops,
			Tags:        []string{"ci", "cache"},
			PublishedAt: day(15),
		},
		{
			ID:          "runner-sizing",
			Title:       "Runner sizing",
			Category:    domain.CategoryDevops,
			Tags:        []string{"runners"},
			PublishedAt: day(10),
		},
		{
			ID:          "ssh-keys",
			Title:       "SSH keys",
			Category:    domain.CategorySecurity,
			Tags:        []string{"ssh"},
			PublishedAt: day(8),
		},
		{
			ID:          "zfs-snapshots",
			Title:       "ZFS snapshots",
			Category:    domain.CategoryLinux,
			Tags:        []string{"zfs"},
			PublishedAt: day(5),
		},
		{
			ID:          "devops-draft",
			Title:       "Unfinished",
			Category:    domain.CategoryDevops,
			Tags:        []string{"ci"},
			PublishedAt: day(25),
			Draft:       true,
		},
	}

	snapshot := index.NewSnapshot(corpus)

	if snapshot.Len() != 5 {
		t.Fatalf("snapshot holds %d articles, want 5 published", snapshot.Len())
	}

	// Category view: exactly the three non-draft devops articles, newest first.
	devops := snapshot.ByCategory(domain.CategoryDevops)
	wantOrder := []string{"ansible-rollouts", "pipeline-caching", "runner-sizing"}
	if len(devops) != len(wantOrder) {
		t.Fatalf("ByCategory(devops) returned %d articles, want %d", len(devops), len(wantOrder))
	}
	for i, want := range wantOrder {
		if devops[i].ID != want {
			t.Errorf("ByCategory(devops)[%d] = %s, want %s", i, devops[i].ID, want)
		}
	}

	// Ranking ansible-rollouts against the rest: pipeline-caching shares the
	// category and the "ci" tag (12), runner-sizing only the category (10).
	related := domain.RankRelated(devops[0], snapshot.All(), domain.DefaultRelatedLimit, domain.DefaultWeights())
	if len(related) != 3 {
		t.Fatalf("RankRelated() returned %d articles, want 3", len(related))
	}
	if related[0].ID != "pipeline-caching" {
		t.Errorf("top related = %s, want pipeline-caching", related[0].ID)
	}
	if related[1].ID != "runner-sizing" {
		t.Errorf("second related = %s, want runner-sizing", related[1].ID)
	}
	for _, a := range related {
		if a.Draft {
			t.Errorf("related list contains draft %s", a.ID)
		}
		if a.ID == devops[0].ID {
			t.Errorf("related list contains the reference article")
		}
	}
}
