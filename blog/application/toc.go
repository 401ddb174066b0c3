package application

import (
	"regexp"
	"strings"
)

// DefaultHeadingOffset is the viewport offset used for scroll tracking,
// leaving room for the fixed navigation chrome above the content.
const DefaultHeadingOffset = 100.0

var (
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	closingHashes  = regexp.MustCompile(`(?:^|\s+)#+\s*$`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// Heading is one entry of a post's table of contents.
type Heading struct {
	ID    string
	Text  string
	Level int
}

// ExtractHeadings scans a markdown body for ATX-style headings and returns
// them in document order. Setext headings are not recognized, and lines
// inside fenced code blocks are not excluded.
// Emphasis markers are left in the text; only the anchor id is normalized.
func ExtractHeadings(body string) []Heading {
	var headings []Heading
	for _, line := range strings.Split(body, "\n") {
		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		// A trailing run of #s is an ATX closing sequence, not heading
		// content; goldmark strips it before rendering, so strip it here too.
		text := closingHashes.ReplaceAllString(strings.TrimSpace(m[2]), "")
		if text == "" {
			continue
		}
		headings = append(headings, Heading{
			ID:    HeadingID(text),
			Text:  text,
			Level: len(m[1]),
		})
	}
	return headings
}

// HeadingID derives the anchor id for a heading: lowercased, with whitespace
// runs collapsed to single hyphens. This is the single source of truth for
// anchor ids; the renderer uses it too, so TOC links always resolve.
func HeadingID(text string) string {
	return whitespaceRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), "-")
}

// HeadingPosition pairs a rendered heading's anchor id with its vertical
// position relative to the viewport top.
type HeadingPosition struct {
	ID  string
	Top float64
}

// ActiveHeading selects the heading the reader is currently inside: the last
// one at or above the offset threshold. When none qualify the first heading
// is active; an empty position list yields "".
func ActiveHeading(positions []HeadingPosition, offset float64) string {
	if len(positions) == 0 {
		return ""
	}

	active := positions[0].ID
	for _, p := range positions {
		if p.Top <= offset {
			active = p.ID
		}
	}
	return active
}
