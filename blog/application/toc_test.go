package application

import (
	"reflect"
	"testing"
)

func TestExtractHeadings(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []Heading
	}{
		{
			name: "Two levels",
			body: "# Title One\n\nSome text.\n\n## Sub Two\n\nMore text.",
			expected: []Heading{
				{ID: "title-one", Text: "Title One", Level: 1},
				{ID: "sub-two", Text: "Sub Two", Level: 2},
			},
		},
		{
			name: "All six levels",
			body: "# A\n## B\n### C\n#### D\n##### E\n###### F",
			expected: []Heading{
				{ID: "a", Text: "A", Level: 1},
				{ID: "b", Text: "B", Level: 2},
				{ID: "c", Text: "C", Level: 3},
				{ID: "d", Text: "D", Level: 4},
				{ID: "e", Text: "E", Level: 5},
				{ID: "f", Text: "F", Level: 6},
			},
		},
		{
			name:     "Seven hashes is not a heading",
			body:     "####### Too deep",
			expected: nil,
		},
		{
			name:     "Hash without space is not a heading",
			body:     "#NoSpace",
			expected: nil,
		},
		{
			name:     "Hash mid-line is not a heading",
			body:     "Some text # not a heading",
			expected: nil,
		},
		{
			name: "Markup stays in the text",
			body: "## **Bold** heading",
			expected: []Heading{
				{ID: "**bold**-heading", Text: "**Bold** heading", Level: 2},
			},
		},
		{
			name: "Closing hash sequence is stripped",
			body: "# Title One ##",
			expected: []Heading{
				{ID: "title-one", Text: "Title One", Level: 1},
			},
		},
		{
			name:     "Heading that is only a closing sequence",
			body:     "# ##",
			expected: nil,
		},
		{
			name: "Hash glued to a word is content",
			body: "# Learning C#",
			expected: []Heading{
				{ID: "learning-c#", Text: "Learning C#", Level: 1},
			},
		},
		{
			name: "Surrounding whitespace is trimmed",
			body: "##   Padded Heading   ",
			expected: []Heading{
				{ID: "padded-heading", Text: "Padded Heading", Level: 2},
			},
		},
		{
			name:     "Empty body",
			body:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractHeadings(tt.body)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ExtractHeadings() = %+v, want %+v", result, tt.expected)
			}
		})
	}
}

func TestHeadingID(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "Simple two words",
			text:     "Title One",
			expected: "title-one",
		},
		{
			name:     "Mixed case",
			text:     "MiXeD CaSe",
			expected: "mixed-case",
		},
		{
			name:     "Whitespace runs collapse",
			text:     "Lots   of\tspace",
			expected: "lots-of-space",
		},
		{
			name:     "Leading and trailing whitespace",
			text:     "  padded  ",
			expected: "padded",
		},
		{
			name:     "Single word",
			text:     "Word",
			expected: "word",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeadingID(tt.text); got != tt.expected {
				t.Errorf("HeadingID(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestActiveHeading(t *testing.T) {
	positions := []HeadingPosition{
		{ID: "intro", Top: -300},
		{ID: "middle", Top: 50},
		{ID: "end", Top: 700},
	}

	tests := []struct {
		name      string
		positions []HeadingPosition
		offset    float64
		expected  string
	}{
		{
			name:      "Last heading above the offset wins",
			positions: positions,
			offset:    DefaultHeadingOffset,
			expected:  "middle",
		},
		{
			name:      "All below the offset falls back to the first",
			positions: []HeadingPosition{{ID: "a", Top: 500}, {ID: "b", Top: 900}},
			offset:    DefaultHeadingOffset,
			expected:  "a",
		},
		{
			name:      "Everything scrolled past selects the last",
			positions: []HeadingPosition{{ID: "a", Top: -900}, {ID: "b", Top: -500}},
			offset:    DefaultHeadingOffset,
			expected:  "b",
		},
		{
			name:      "Exactly at the offset qualifies",
			positions: []HeadingPosition{{ID: "a", Top: 100}, {ID: "b", Top: 600}},
			offset:    100,
			expected:  "a",
		},
		{
			name:      "No headings",
			positions: nil,
			offset:    DefaultHeadingOffset,
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActiveHeading(tt.positions, tt.offset); got != tt.expected {
				t.Errorf("ActiveHeading() = %q, want %q", got, tt.expected)
			}
		})
	}
}
