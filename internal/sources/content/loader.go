package content

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var frontMatterDelimiter = []byte("---")

// Loader reads Markdown article files from a content directory.
type Loader struct {
	dir string
}

// NewLoader creates a new content loader
func NewLoader(dir string) *Loader {
	return &Loader{
		dir: dir,
	}
}

// Load walks the content directory and parses every .md file.
// WalkDir visits files in lexical order, so the returned slice order is
// deterministic across runs; that order is the corpus ingestion order.
func (l *Loader) Load() ([]RawArticle, error) {
	var articles []RawArticle

	err := filepath.WalkDir(l.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read article file %s: %w", path, err)
		}

		rel, err := filepath.Rel(l.dir, path)
		if err != nil {
			rel = path
		}

		raw, err := parseArticle(rel, data)
		if err != nil {
			return err
		}

		articles = append(articles, raw)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load content from %s: %w", l.dir, err)
	}

	return articles, nil
}

// parseArticle splits a file into front matter and body and parses the yaml.
func parseArticle(path string, data []byte) (RawArticle, error) {
	meta, body, err := splitFrontMatter(data)
	if err != nil {
		return RawArticle{}, fmt.Errorf("%s: %w", path, err)
	}

	var fm FrontMatter
	if err := yaml.Unmarshal(meta, &fm); err != nil {
		return RawArticle{}, fmt.Errorf("%s: failed to parse front matter: %w", path, err)
	}

	return RawArticle{
		Path: path,
		Meta: fm,
		Body: string(body),
	}, nil
}

// splitFrontMatter separates the leading "---" delimited YAML block from the
// Markdown body. The block is required: an article without front matter has
// no date or category and cannot be indexed.
func splitFrontMatter(data []byte) (meta, body []byte, err error) {
	trimmed := bytes.TrimLeft(data, "\n\r")
	if !bytes.HasPrefix(trimmed, frontMatterDelimiter) {
		return nil, nil, fmt.Errorf("missing front matter block")
	}

	// Skip the opening delimiter line.
	rest := trimmed[len(frontMatterDelimiter):]
	if nl := bytes.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	} else {
		return nil, nil, fmt.Errorf("unterminated front matter block")
	}

	// Find the closing delimiter at line start.
	for offset := 0; ; {
		idx := bytes.Index(rest[offset:], frontMatterDelimiter)
		if idx < 0 {
			return nil, nil, fmt.Errorf("unterminated front matter block")
		}
		idx += offset
		if idx != 0 && rest[idx-1] != '\n' {
			offset = idx + len(frontMatterDelimiter)
			continue
		}

		meta = rest[:idx]
		body = rest[idx+len(frontMatterDelimiter):]
		body = bytes.TrimLeft(body, "\n\r")
		return meta, body, nil
	}
}
