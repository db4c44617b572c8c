package content

import "time"

// FrontMatter represents the YAML block at the top of an article file.
// Dates accept anything yaml.v3 parses as a timestamp (RFC 3339 or a bare
// "2006-01-02" date).
type FrontMatter struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description,omitempty"`
	Date        time.Time `yaml:"date"`
	Updated     time.Time `yaml:"updated,omitempty"`
	Category    string    `yaml:"category"`
	Tags        []string  `yaml:"tags,omitempty"`
	Author      string    `yaml:"author,omitempty"`
	Featured    bool      `yaml:"featured,omitempty"`
	Draft       bool      `yaml:"draft,omitempty"`
}

// RawArticle is one parsed article file before mapping into the domain.
type RawArticle struct {
	Path string // path relative to the content directory
	Meta FrontMatter
	Body string // Markdown body, front matter stripped
}
