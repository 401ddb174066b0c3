package persistence

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dfryer1193/mdblog/blog/domain"
)

const postExt = ".md"

// PathResolver maps post ids and dates to file locations under a root
// directory. A post's location is derived from its date field, so callers
// mutating the date must relocate the file themselves.
type PathResolver struct {
	root string
}

func NewPathResolver(root string) *PathResolver {
	return &PathResolver{root: root}
}

func (r *PathResolver) Root() string {
	return r.root
}

// Locate resolves <root>/<YYYYMM>/<id>.md for the given date.
func (r *PathResolver) Locate(id string, date string) (string, error) {
	partition, err := Partition(date)
	if err != nil {
		return "", err
	}
	return filepath.Join(r.root, partition, id+postExt), nil
}

// Partition computes the year-month partition key (YYYYMM) for a date.
func Partition(date string) (string, error) {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid post date %q: %w", date, err)
	}
	return fmt.Sprintf("%04d%02d", t.Year(), int(t.Month())), nil
}

// Walk collects every post file under the root, recursively, regardless of
// how the partition directories are named. A missing root is an empty result,
// not an error.
func (r *PathResolver) Walk() ([]string, error) {
	var files []string
	err := filepath.WalkDir(r.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), postExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to walk post directory: %w", err)
	}
	return files, nil
}
