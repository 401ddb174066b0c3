package application

import (
	"path/filepath"
	"strings"

	"github.com/dfryer1193/mdblog/blog/frontmatter"
)

// Upload is the parsed form of an uploaded markdown file, ready to publish.
type Upload struct {
	Title   string
	Content string
	Tags    []string
}

// ParseUpload interprets an uploaded markdown file. A front matter header is
// optional; without one the whole file is the body. The title falls back from
// the header to a leading level-one heading to the file name with its
// extension stripped. A malformed header is an error; the caller shows it
// and keeps the user's input.
func ParseUpload(filename string, data []byte) (Upload, error) {
	meta, body, err := frontmatter.Decode(data)
	if err != nil {
		return Upload{}, err
	}

	title := meta.Title
	if title == "" {
		title = extractPostTitle(body)
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	return Upload{
		Title:   title,
		Content: strings.TrimSpace(body),
		Tags:    meta.Tags,
	}, nil
}

// extractPostTitle pulls a title from a leading level-one heading, if any.
func extractPostTitle(markdown string) string {
	lines := strings.SplitN(markdown, "\n", 2)
	if len(lines) == 0 {
		return ""
	}

	title, found := strings.CutPrefix(strings.TrimSpace(lines[0]), "# ")
	if !found {
		return ""
	}
	return strings.TrimSpace(title)
}

// ParseTagInput splits a comma-separated tag string from a form field into a
// clean tag list.
func ParseTagInput(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
