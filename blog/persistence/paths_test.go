package persistence

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected string
		wantErr  bool
	}{
		{
			name:     "Spring date",
			date:     "2025-03-10 20:00:00",
			expected: "202503",
		},
		{
			name:     "December keeps two digits",
			date:     "2024-12-31 23:59:59",
			expected: "202412",
		},
		{
			name:     "Single-digit month is zero padded",
			date:     "2025-01-01 00:00:00",
			expected: "202501",
		},
		{
			name:    "Malformed date",
			date:    "10/03/2025",
			wantErr: true,
		},
		{
			name:    "Empty date",
			date:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			partition, err := Partition(tt.date)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Partition(%q) should have failed", tt.date)
				}
				return
			}
			if err != nil {
				t.Fatalf("Partition(%q) failed: %v", tt.date, err)
			}
			if partition != tt.expected {
				t.Errorf("Partition(%q) = %q, want %q", tt.date, partition, tt.expected)
			}
		})
	}
}

func TestPathResolverLocate(t *testing.T) {
	resolver := NewPathResolver("/data/posts")

	path, err := resolver.Locate("1741608000000", "2025-03-10 20:00:00")
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}

	expected := filepath.Join("/data/posts", "202503", "1741608000000.md")
	if path != expected {
		t.Errorf("Locate = %q, want %q", path, expected)
	}

	if _, err := resolver.Locate("1", "not a date"); err == nil {
		t.Error("Locate with a malformed date should have failed")
	}
}

func TestPathResolverWalk(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "202503", "1.md"), "a")
	mustWriteFile(t, filepath.Join(root, "202412", "2.md"), "b")
	mustWriteFile(t, filepath.Join(root, "hand-made", "3.md"), "c")
	mustWriteFile(t, filepath.Join(root, "202503", "notes.txt"), "ignored")

	files, err := NewPathResolver(root).Walk()
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("Walk found %d files, want 3: %v", len(files), files)
	}
}

func TestPathResolverWalkMissingRoot(t *testing.T) {
	files, err := NewPathResolver(filepath.Join(t.TempDir(), "missing")).Walk()
	if err != nil {
		t.Fatalf("Walk on a missing root should not fail: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Walk = %v, want empty", files)
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
