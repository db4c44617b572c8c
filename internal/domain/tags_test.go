package domain

import (
	"reflect"
	"regexp"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "simple lowercase",
			in:   "docker",
			want: "docker",
		},
		{
			name: "mixed case trimmed",
			in:   "  Docker Compose  ",
			want: "docker-compose",
		},
		{
			name: "slash becomes dash",
			in:   "CI/CD",
			want: "ci-cd",
		},
		{
			name: "whitespace runs collapse",
			in:   "nginx   reverse \t proxy",
			want: "nginx-reverse-proxy",
		},
		{
			name: "special characters stripped",
			in:   "C++ & Go!",
			want: "c-go",
		},
		{
			name: "repeated dashes collapse",
			in:   "a -- b",
			want: "a-b",
		},
		{
			name: "leading and trailing dashes trimmed",
			in:   "-docker-",
			want: "docker",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "whitespace only",
			in:   "   ",
			want: "",
		},
		{
			name: "symbols only",
			in:   "???",
			want: "",
		},
	}

	slugPattern := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.in)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}

			// Idempotence
			if again := Slugify(got); again != got {
				t.Errorf("Slugify not idempotent: Slugify(%q) = %q", got, again)
			}

			// Shape
			if got != "" && !slugPattern.MatchString(got) {
				t.Errorf("Slugify(%q) = %q does not match slug pattern", tt.in, got)
			}
		})
	}
}

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Docker", "docker"},
		{" DOCKER ", "docker"},
		{"docker", "docker"},
		{"  ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeTag(tt.in); got != tt.want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCollectCanonicalTags(t *testing.T) {
	now := time.Now()

	articles := []*Article{
		{ID: "a", Tags: []string{"Docker", "nginx"}, PublishedAt: now},
		{ID: "b", Tags: []string{"docker", "Ansible"}, PublishedAt: now},
		{ID: "c", Tags: []string{" DOCKER ", "nginx"}, PublishedAt: now},
	}

	got := CollectCanonicalTags(articles)
	want := []string{"Ansible", "Docker", "nginx"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectCanonicalTags() = %v, want %v", got, want)
	}
}

func TestCollectCanonicalTagsFirstSeenWins(t *testing.T) {
	articles := []*Article{
		{ID: "a", Tags: []string{"PostgreSQL"}},
		{ID: "b", Tags: []string{"postgresql", "POSTGRESQL"}},
	}

	got := CollectCanonicalTags(articles)
	if len(got) != 1 {
		t.Fatalf("CollectCanonicalTags() returned %d tags, want 1", len(got))
	}
	if got[0] != "PostgreSQL" {
		t.Errorf("display form = %q, want first-seen %q", got[0], "PostgreSQL")
	}
}

func TestCollectCanonicalTagsDropsEmpty(t *testing.T) {
	articles := []*Article{
		{ID: "a", Tags: []string{"", "   ", "linux"}},
	}

	got := CollectCanonicalTags(articles)
	want := []string{"linux"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectCanonicalTags() = %v, want %v", got, want)
	}
}

func TestCollectCanonicalTagsCaseInsensitiveOrder(t *testing.T) {
	articles := []*Article{
		{ID: "a", Tags: []string{"zsh", "Bash", "ansible"}},
	}

	got := CollectCanonicalTags(articles)
	want := []string{"ansible", "Bash", "zsh"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectCanonicalTags() = %v, want %v", got, want)
	}
}
