package frontmatter

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dfryer1193/mdblog/blog/domain"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		meta FrontMatter
		body string
	}{
		{
			name: "Full metadata",
			meta: FrontMatter{
				Title:      "A Post",
				Tags:       TagList{"go", "blogging"},
				Date:       "2025-03-10 20:00:00",
				Image:      "/covers/a.png",
				IsNewest:   true,
				IsFeatured: true,
			},
			body: "# Heading\n\nSome body text.\n",
		},
		{
			name: "Deleted post with timestamp",
			meta: FrontMatter{
				Title:     "Trashed",
				Tags:      TagList{"old"},
				Date:      "2024-12-01 08:30:00",
				Image:     domain.DefaultImage,
				IsDeleted: true,
				DeletedAt: "2025-01-01 00:00:00",
			},
			body: "gone but not forgotten",
		},
		{
			name: "Empty tags and empty body",
			meta: FrontMatter{
				Title: "Bare",
				Tags:  TagList{},
				Date:  "2025-06-15 12:00:00",
				Image: domain.DefaultImage,
			},
			body: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := Encode(tt.meta, tt.body)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			meta, body, err := Decode(blob)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !reflect.DeepEqual(meta, tt.meta) {
				t.Errorf("meta = %+v, want %+v", meta, tt.meta)
			}
			if body != tt.body {
				t.Errorf("body = %q, want %q", body, tt.body)
			}
		})
	}
}

func TestDecodeDefaults(t *testing.T) {
	blob := []byte("---\ntitle: Sparse\ndate: \"2025-03-10 20:00:00\"\n---\nbody\n")

	meta, body, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if meta.Title != "Sparse" {
		t.Errorf("Title = %q, want %q", meta.Title, "Sparse")
	}
	if meta.Tags == nil || len(meta.Tags) != 0 {
		t.Errorf("Tags = %v, want empty non-nil list", meta.Tags)
	}
	if meta.Image != domain.DefaultImage {
		t.Errorf("Image = %q, want %q", meta.Image, domain.DefaultImage)
	}
	if meta.IsNewest || meta.IsFeatured || meta.IsDeleted {
		t.Errorf("boolean flags should default to false, got %+v", meta)
	}
	if meta.DeletedAt != "" {
		t.Errorf("DeletedAt = %q, want empty", meta.DeletedAt)
	}
	if body != "body\n" {
		t.Errorf("body = %q, want %q", body, "body\n")
	}
}

func TestDecodeWithoutFrontMatter(t *testing.T) {
	blob := []byte("# Just a markdown file\n\nNo header at all.\n")

	meta, body, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(blob) != body {
		t.Errorf("body = %q, want the whole input", body)
	}
	if meta.Image != domain.DefaultImage {
		t.Errorf("Image = %q, want default", meta.Image)
	}
	if meta.Tags == nil {
		t.Error("Tags should default to an empty list, got nil")
	}
}

func TestDecodeCRLF(t *testing.T) {
	blob := []byte("---\r\ntitle: Windows Draft\r\ntags: [win]\r\n---\r\nLine one.\r\nLine two.\r\n")

	meta, body, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if meta.Title != "Windows Draft" {
		t.Errorf("Title = %q, want %q", meta.Title, "Windows Draft")
	}
	if !reflect.DeepEqual(meta.Tags, TagList{"win"}) {
		t.Errorf("Tags = %v, want [win]", meta.Tags)
	}
	if body != "Line one.\nLine two.\n" {
		t.Errorf("body = %q, want the LF-normalized body", body)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{
			name: "Unterminated header",
			blob: "---\ntitle: Oops\nno closing delimiter",
		},
		{
			name: "Invalid YAML",
			blob: "---\ntitle: [unclosed\n---\nbody",
		},
		{
			name: "Delimiter only",
			blob: "---\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode([]byte(tt.blob))
			if err == nil {
				t.Fatal("Decode should have failed")
			}

			var parseErr *domain.ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("error = %v, want *domain.ParseError", err)
			}
		})
	}
}

func TestDecodeTagsFallback(t *testing.T) {
	tests := []struct {
		name     string
		blob     string
		expected TagList
	}{
		{
			name:     "YAML sequence",
			blob:     "---\ntags:\n  - go\n  - web\n---\nbody",
			expected: TagList{"go", "web"},
		},
		{
			name:     "Flow sequence",
			blob:     "---\ntags: [go, web]\n---\nbody",
			expected: TagList{"go", "web"},
		},
		{
			name:     "Comma-separated scalar",
			blob:     "---\ntags: go, web\n---\nbody",
			expected: TagList{"go", "web"},
		},
		{
			name:     "Bracketed quoted scalar",
			blob:     "---\ntags: \"[go, 'web']\"\n---\nbody",
			expected: TagList{"go", "web"},
		},
		{
			name:     "Empty scalar",
			blob:     "---\ntags: \"\"\n---\nbody",
			expected: TagList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, _, err := Decode([]byte(tt.blob))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !reflect.DeepEqual(meta.Tags, tt.expected) {
				t.Errorf("Tags = %v, want %v", meta.Tags, tt.expected)
			}
		})
	}
}
