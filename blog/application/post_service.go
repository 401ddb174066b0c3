package application

import (
	"context"
	"fmt"
	"time"

	"github.com/dfryer1193/mdblog/blog/domain"
	"github.com/rs/zerolog/log"
)

// PostService ties the post repository to the markdown pipeline. All reads
// and writes of persisted post state go through the repository; everything
// here is derived on demand.
type PostService struct {
	repo     domain.PostRepository
	markdown MarkdownRenderer
}

func NewPostService(repo domain.PostRepository, markdown MarkdownRenderer) *PostService {
	return &PostService{
		repo:     repo,
		markdown: markdown,
	}
}

// ListPosts returns the feed, optionally filtered by tag ("" or "all" means
// no filter).
func (s *PostService) ListPosts(ctx context.Context, tag string) ([]*domain.Post, error) {
	return s.repo.List(ctx, tag, false)
}

// Tags returns the distinct tags across non-deleted posts.
func (s *PostService) Tags(ctx context.Context) ([]string, error) {
	return s.repo.AllTags(ctx)
}

// Trash returns the soft-deleted posts.
func (s *PostService) Trash(ctx context.Context) ([]*domain.Post, error) {
	return s.repo.ListDeleted(ctx)
}

// Snippet produces the short plain-text summary shown in list views.
func (s *PostService) Snippet(content string) string {
	return extractSnippet(content)
}

// RenderedPost pairs a post with its HTML rendering and table of contents.
type RenderedPost struct {
	Post *domain.Post
	HTML string
	Toc  []Heading
}

// Rendered loads a post and runs its body through the markdown pipeline.
// The TOC and the rendered heading ids come from the same derivation, so
// in-page anchors always resolve.
func (s *PostService) Rendered(ctx context.Context, id string) (*RenderedPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	html, err := s.markdown.Render(post.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to render post %s: %w", id, err)
	}

	return &RenderedPost{
		Post: post,
		HTML: html,
		Toc:  ExtractHeadings(post.Content),
	}, nil
}

// Publish creates a new post from composed input. The repository assigns id,
// date and flags.
func (s *PostService) Publish(ctx context.Context, title string, content string, tags []string) (*domain.Post, error) {
	return s.repo.Create(ctx, title, content, tags)
}

// Upload parses an uploaded markdown file and publishes it. Caller-supplied
// tags take precedence over tags found in the file's header.
func (s *PostService) Upload(ctx context.Context, filename string, data []byte, tags []string) (*domain.Post, error) {
	up, err := ParseUpload(filename, data)
	if err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		up.Tags = tags
	}
	return s.repo.Create(ctx, up.Title, up.Content, up.Tags)
}

// UpdateDate changes a post's date; the repository relocates the file when
// the year-month partition changes.
func (s *PostService) UpdateDate(ctx context.Context, id string, newDate string) error {
	return s.repo.UpdateDate(ctx, id, newDate)
}

// MoveToTrash soft-deletes a post.
func (s *PostService) MoveToTrash(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}

// Restore brings a post back from the trash.
func (s *PostService) Restore(ctx context.Context, id string) error {
	return s.repo.Restore(ctx, id)
}

// Purge permanently removes a trashed post.
func (s *PostService) Purge(ctx context.Context, id string) error {
	return s.repo.Purge(ctx, id)
}

// MonthGroup holds one month's posts within a year of the history view.
type MonthGroup struct {
	Month string
	Posts []*domain.Post
}

// YearGroup holds one year of the history view, months newest first.
type YearGroup struct {
	Year   string
	Months []MonthGroup
}

// History groups non-deleted posts by year, then month, both newest first.
// Posts arrive date-descending from the repository, so encounter order is
// group order.
func (s *PostService) History(ctx context.Context) ([]YearGroup, error) {
	posts, err := s.repo.List(ctx, "", false)
	if err != nil {
		return nil, err
	}

	var years []YearGroup
	for _, post := range posts {
		t, err := time.Parse(domain.DateLayout, post.Date)
		if err != nil {
			log.Warn().Str("postID", post.ID).Str("date", post.Date).Msg("Skipping post with unparseable date in history")
			continue
		}

		year := fmt.Sprintf("%04d", t.Year())
		month := fmt.Sprintf("%02d", int(t.Month()))

		if len(years) == 0 || years[len(years)-1].Year != year {
			years = append(years, YearGroup{Year: year})
		}
		yg := &years[len(years)-1]

		if len(yg.Months) == 0 || yg.Months[len(yg.Months)-1].Month != month {
			yg.Months = append(yg.Months, MonthGroup{Month: month})
		}
		mg := &yg.Months[len(yg.Months)-1]
		mg.Posts = append(mg.Posts, post)
	}

	return years, nil
}
