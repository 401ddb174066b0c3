// Package frontmatter encodes and decodes the on-disk post format: a
// "---"-delimited YAML metadata header followed by the raw markdown body.
package frontmatter

import (
	"errors"
	"strings"

	"github.com/dfryer1193/mdblog/blog/domain"
	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// FrontMatter is the metadata header of a persisted post. Optional fields
// default on decode: tags to an empty list, image to the placeholder asset,
// booleans to false.
type FrontMatter struct {
	Title      string  `yaml:"title"`
	Tags       TagList `yaml:"tags"`
	Date       string  `yaml:"date"`
	Image      string  `yaml:"image"`
	IsNewest   bool    `yaml:"isNewest"`
	IsFeatured bool    `yaml:"isFeatured"`
	IsDeleted  bool    `yaml:"isDeleted"`
	DeletedAt  string  `yaml:"deletedAt,omitempty"`
}

// TagList unmarshals either a proper YAML sequence or the lenient scalar form
// ("a, b" or "[a, b]") found in hand-written upload headers.
type TagList []string

func (t *TagList) UnmarshalYAML(value *yaml.Node) error {
	var tags []string
	if err := value.Decode(&tags); err == nil {
		*t = tags
		return nil
	}

	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	raw = strings.Trim(strings.TrimSpace(raw), "[]")
	for _, part := range strings.Split(raw, ",") {
		part = strings.Trim(strings.TrimSpace(part), `"'`)
		if part != "" {
			*t = append(*t, part)
		}
	}
	return nil
}

// Encode serializes metadata and body into a single blob. The body is appended
// verbatim after the closing delimiter.
func Encode(meta FrontMatter, body string) ([]byte, error) {
	header, err := yaml.Marshal(meta)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(delimiter + "\n")
	sb.Write(header)
	sb.WriteString(delimiter + "\n")
	sb.WriteString(body)
	return []byte(sb.String()), nil
}

// Decode splits a blob into metadata and body. A blob without an opening
// delimiter is treated as all body with zero metadata (defaults applied).
// An unterminated or malformed header yields a *domain.ParseError.
func Decode(data []byte) (FrontMatter, string, error) {
	var meta FrontMatter
	// Windows-edited uploads arrive with CRLF line endings; normalize so the
	// delimiter matching below only deals with plain newlines.
	s := strings.ReplaceAll(string(data), "\r\n", "\n")

	if !strings.HasPrefix(s, delimiter+"\n") {
		applyDefaults(&meta)
		return meta, s, nil
	}

	rest := s[len(delimiter):] // keep the newline so the closing match anchors to a line start
	var header, body string
	if i := strings.Index(rest, "\n"+delimiter+"\n"); i >= 0 {
		header = strings.TrimPrefix(rest[:i], "\n")
		body = rest[i+len(delimiter)+2:]
	} else if strings.HasSuffix(rest, "\n"+delimiter) {
		header = strings.TrimPrefix(rest[:len(rest)-len(delimiter)-1], "\n")
	} else {
		return FrontMatter{}, "", &domain.ParseError{Err: errors.New("unterminated front matter header")}
	}

	if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
		return FrontMatter{}, "", &domain.ParseError{Err: err}
	}

	applyDefaults(&meta)
	return meta, body, nil
}

func applyDefaults(meta *FrontMatter) {
	if meta.Tags == nil {
		meta.Tags = TagList{}
	}
	if meta.Image == "" {
		meta.Image = domain.DefaultImage
	}
}
