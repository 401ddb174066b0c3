package domain

import (
	"context"
	"time"
)

// DateLayout is the textual timestamp format used everywhere a post date is
// stored or compared. Dates are second-precision strings, not time.Time values,
// so lexicographic order matches chronological order.
const DateLayout = "2006-01-02 15:04:05"

// DefaultImage is the cover image assigned to posts that don't set one.
const DefaultImage = "/true-duck.png"

// Now returns the current time shifted to UTC+8, the fixed zone all post dates
// are written in. The platform's local zone is deliberately ignored.
func Now(clock func() time.Time) string {
	return clock().UTC().Add(8 * time.Hour).Format(DateLayout)
}

// Post represents a blog post persisted as a front-matter markdown file.
// A post lives under a year-month partition derived from its Date; the file
// location follows the date, not the creation time.
type Post struct {
	ID         string
	Title      string
	Content    string
	Tags       []string
	Date       string
	Image      string
	IsNewest   bool
	IsFeatured bool
	IsDeleted  bool
	DeletedAt  string
}

type PostRepository interface {
	// List returns posts sorted by date descending. tag filters by membership;
	// "" or "all" disables the filter. Deleted posts are excluded unless
	// includeDeleted is set.
	List(ctx context.Context, tag string, includeDeleted bool) ([]*Post, error)
	GetByID(ctx context.Context, id string) (*Post, error)
	Create(ctx context.Context, title string, content string, tags []string) (*Post, error)
	UpdateDate(ctx context.Context, id string, newDate string) error

	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	Purge(ctx context.Context, id string) error
	ListDeleted(ctx context.Context) ([]*Post, error)

	AllTags(ctx context.Context) ([]string, error)
}
