package store

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

var (
	ErrNoFrontmatter       = errors.New("template has no frontmatter")
	ErrUnclosedFrontmatter = errors.New("unclosed frontmatter delimiter")
)

// splitFrontmatter returns the YAML between the leading delimiters and the
// markdown that follows them.
func splitFrontmatter(content string) (string, string, error) {
	content = strings.TrimSpace(content)

	rest, ok := strings.CutPrefix(content, frontmatterDelimiter)
	if !ok {
		return "", "", ErrNoFrontmatter
	}

	closing := "\n" + frontmatterDelimiter
	idx := strings.Index(rest, closing)
	if idx == -1 {
		return "", "", ErrUnclosedFrontmatter
	}

	body := strings.TrimLeft(rest[idx+len(closing):], "\n")
	return rest[:idx], body, nil
}

// ParseTemplate reads template.md content. The template must describe a valid
// milestone progression.
func ParseTemplate(content string) (*Template, error) {
	front, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, err
	}

	var t Template
	if err := yaml.Unmarshal([]byte(front), &t); err != nil {
		return nil, fmt.Errorf("parsing frontmatter YAML: %w", err)
	}
	t.Body = body

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// SerializeTemplate renders a Template as markdown with YAML frontmatter.
func SerializeTemplate(t *Template) (string, error) {
	var front bytes.Buffer
	enc := yaml.NewEncoder(&front)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return "", fmt.Errorf("serializing frontmatter YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("serializing frontmatter YAML: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n%s\n", frontmatterDelimiter, strings.TrimRight(front.String(), "\n"), frontmatterDelimiter)
	if body := strings.TrimRight(t.Body, "\n"); body != "" {
		fmt.Fprintf(&b, "\n%s\n", body)
	}
	return b.String(), nil
}
