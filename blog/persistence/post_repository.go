package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dfryer1193/mdblog/blog/domain"
	"github.com/dfryer1193/mdblog/blog/frontmatter"
	"github.com/dfryer1193/mjolnir/utils/set"
	"github.com/rs/zerolog/log"
)

var _ domain.PostRepository = (*FilePostRepository)(nil)

// FilePostRepository implements domain.PostRepository over flat files
// partitioned by year-month. It assumes a single writer: there is no locking,
// and concurrent mutation of the same post is last-writer-wins.
type FilePostRepository struct {
	paths *PathResolver
	now   func() time.Time
}

// NewPostRepository creates a FilePostRepository rooted at the given directory.
func NewPostRepository(root string) *FilePostRepository {
	return &FilePostRepository{
		paths: NewPathResolver(root),
		now:   time.Now,
	}
}

// List returns posts sorted by date descending (id descending breaks ties).
// Unreadable or unparseable files are skipped, and a failed directory walk
// degrades to an empty result rather than an error; the read path never
// aborts the whole listing.
func (r *FilePostRepository) List(ctx context.Context, tag string, includeDeleted bool) ([]*domain.Post, error) {
	files, err := r.paths.Walk()
	if err != nil {
		log.Error().Err(err).Str("root", r.paths.Root()).Msg("Failed to walk post directory")
		return []*domain.Post{}, nil
	}

	posts := make([]*domain.Post, 0, len(files))
	for _, path := range files {
		post, err := readPost(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Skipping unreadable post file")
			continue
		}
		if post.IsDeleted && !includeDeleted {
			continue
		}
		posts = append(posts, post)
	}

	sort.Slice(posts, func(i, j int) bool {
		if posts[i].Date != posts[j].Date {
			return posts[i].Date > posts[j].Date
		}
		return posts[i].ID > posts[j].ID
	})

	if tag == "" || tag == "all" {
		return posts, nil
	}

	filtered := make([]*domain.Post, 0, len(posts))
	for _, post := range posts {
		if containsTag(post.Tags, tag) {
			filtered = append(filtered, post)
		}
	}
	return filtered, nil
}

// GetByID retrieves a single post, deleted or not. Absent ids yield
// domain.ErrNotFound.
func (r *FilePostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	posts, err := r.List(ctx, "", true)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		if post.ID == id {
			return post, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
}

// Create persists a new post flagged as newest, then clears the flag on every
// previously flagged post. The new post is written first so a partial failure
// can leave an extra newest flag but never zero.
func (r *FilePostRepository) Create(ctx context.Context, title string, content string, tags []string) (*domain.Post, error) {
	if tags == nil {
		tags = []string{}
	}
	date := domain.Now(r.now)

	flagged := r.newestFlagged(ctx)

	id, path, err := r.claimID(date)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		ID:       id,
		Title:    title,
		Content:  content,
		Tags:     tags,
		Date:     date,
		Image:    domain.DefaultImage,
		IsNewest: true,
	}
	if err := writePost(path, post); err != nil {
		return nil, fmt.Errorf("failed to persist new post: %w", err)
	}

	for _, prev := range flagged {
		if prev.ID == id {
			continue
		}
		prev.IsNewest = false
		if err := r.rewrite(prev); err != nil {
			log.Error().Err(err).Str("postID", prev.ID).Msg("Failed to clear stale newest flag")
		}
	}

	return post, nil
}

// UpdateDate changes a post's date, relocating the file when the new date
// falls in a different year-month partition.
func (r *FilePostRepository) UpdateDate(ctx context.Context, id string, newDate string) error {
	post, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	oldPath, err := r.paths.Locate(id, post.Date)
	if err != nil {
		return err
	}
	newPath, err := r.paths.Locate(id, newDate)
	if err != nil {
		return err
	}

	post.Date = newDate
	if err := writePost(newPath, post); err != nil {
		return fmt.Errorf("failed to relocate post %s: %w", id, err)
	}
	if newPath != oldPath {
		if err := os.Remove(oldPath); err != nil {
			return fmt.Errorf("failed to remove post %s from old partition: %w", id, err)
		}
	}
	return nil
}

// SoftDelete marks a post deleted and stamps deletedAt. Re-deleting refreshes
// the stamp. Failures are logged, not returned.
func (r *FilePostRepository) SoftDelete(ctx context.Context, id string) error {
	post, err := r.GetByID(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("postID", id).Msg("Failed to soft-delete post")
		return nil
	}

	post.IsDeleted = true
	post.DeletedAt = domain.Now(r.now)
	if err := r.rewrite(post); err != nil {
		log.Error().Err(err).Str("postID", id).Msg("Failed to soft-delete post")
	}
	return nil
}

// Restore clears the deletion markers. Failures are logged, not returned.
func (r *FilePostRepository) Restore(ctx context.Context, id string) error {
	post, err := r.GetByID(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("postID", id).Msg("Failed to restore post")
		return nil
	}

	post.IsDeleted = false
	post.DeletedAt = ""
	if err := r.rewrite(post); err != nil {
		log.Error().Err(err).Str("postID", id).Msg("Failed to restore post")
	}
	return nil
}

// Purge physically removes a post file. Only posts already in the trash may
// be purged; this is the one irreversible operation, so every failure
// propagates to the caller.
func (r *FilePostRepository) Purge(ctx context.Context, id string) error {
	post, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !post.IsDeleted {
		return fmt.Errorf("%w: %s", domain.ErrNotInTrash, id)
	}

	path, err := r.paths.Locate(id, post.Date)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%w: no file for %s", domain.ErrNotFound, id)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to purge post %s: %w", id, err)
	}
	return nil
}

// ListDeleted returns the trash view: deleted posts only, date descending.
func (r *FilePostRepository) ListDeleted(ctx context.Context) ([]*domain.Post, error) {
	posts, err := r.List(ctx, "", true)
	if err != nil {
		return nil, err
	}

	deleted := make([]*domain.Post, 0)
	for _, post := range posts {
		if post.IsDeleted {
			deleted = append(deleted, post)
		}
	}
	return deleted, nil
}

// AllTags returns the duplicate-free union of tags across non-deleted posts.
func (r *FilePostRepository) AllTags(ctx context.Context) ([]string, error) {
	posts, err := r.List(ctx, "", false)
	if err != nil {
		return nil, err
	}

	tags := set.New[string]()
	for _, post := range posts {
		for _, tag := range post.Tags {
			if tag != "" {
				tags.Add(tag)
			}
		}
	}
	return tags.Items(), nil
}

// newestFlagged collects every post currently flagged newest, deleted or not.
func (r *FilePostRepository) newestFlagged(ctx context.Context) []*domain.Post {
	posts, err := r.List(ctx, "", true)
	if err != nil {
		return nil
	}

	var flagged []*domain.Post
	for _, post := range posts {
		if post.IsNewest {
			flagged = append(flagged, post)
		}
	}
	return flagged
}

// claimID derives a millisecond-timestamp id, bumping it while the resolved
// path is taken so two creates inside the same millisecond cannot collide.
func (r *FilePostRepository) claimID(date string) (string, string, error) {
	ms := r.now().UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		path, err := r.paths.Locate(id, date)
		if err != nil {
			return "", "", err
		}
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			return id, path, nil
		}
		if err != nil {
			return "", "", fmt.Errorf("failed to check candidate path for %s: %w", id, err)
		}
		ms++
	}
}

func (r *FilePostRepository) rewrite(post *domain.Post) error {
	path, err := r.paths.Locate(post.ID, post.Date)
	if err != nil {
		return err
	}
	return writePost(path, post)
}

func readPost(path string) (*domain.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	meta, body, err := frontmatter.Decode(data)
	if err != nil {
		var parseErr *domain.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		return nil, err
	}

	return &domain.Post{
		ID:         strings.TrimSuffix(filepath.Base(path), postExt),
		Title:      meta.Title,
		Content:    body,
		Tags:       meta.Tags,
		Date:       meta.Date,
		Image:      meta.Image,
		IsNewest:   meta.IsNewest,
		IsFeatured: meta.IsFeatured,
		IsDeleted:  meta.IsDeleted,
		DeletedAt:  meta.DeletedAt,
	}, nil
}

func writePost(path string, post *domain.Post) error {
	data, err := frontmatter.Encode(frontmatter.FrontMatter{
		Title:      post.Title,
		Tags:       frontmatter.TagList(post.Tags),
		Date:       post.Date,
		Image:      post.Image,
		IsNewest:   post.IsNewest,
		IsFeatured: post.IsFeatured,
		IsDeleted:  post.IsDeleted,
		DeletedAt:  post.DeletedAt,
	}, post.Content)
	if err != nil {
		return fmt.Errorf("failed to encode post: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create partition directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write post file: %w", err)
	}
	return nil
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
