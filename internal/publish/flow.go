package publish

import (
	"context"
	"io"
	"log/slog"

	"github.com/geek-project/geekctl/internal/api"
	"github.com/geek-project/geekctl/internal/cover"
)

// ArticleAPI is the slice of the API client the flow depends on.
type ArticleAPI interface {
	CreateArticle(ctx context.Context, draft api.ArticleDraft) (api.Article, error)
	UpdateArticle(ctx context.Context, id string, draft api.ArticleDraft) (api.Article, error)
}

// Draft is the form snapshot collected before submission. An empty ID means
// a new article; a non-empty one selects the update path.
type Draft struct {
	ID        string
	Title     string
	Content   string
	ChannelID int64
}

// Result reports what a submission did.
type Result struct {
	Article api.Article
	Updated bool
}

// Flow validates, shapes, and dispatches article submissions.
type Flow struct {
	client ArticleAPI
	logger *slog.Logger
}

// NewFlow creates a submission flow.
func NewFlow(client ArticleAPI, logger *slog.Logger) *Flow {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Flow{client: client, logger: logger}
}

// Submit checks the cover invariant, shapes the payload, and dispatches
// create or update depending on the draft's identifier. A cover mismatch
// fails locally: no request is issued and the caller's state stays intact
// for resubmission.
func (f *Flow) Submit(ctx context.Context, draft Draft, sel *cover.Selector) (Result, error) {
	if err := sel.Validate(); err != nil {
		return Result{}, err
	}

	payload := api.ArticleDraft{
		Title:     draft.Title,
		Content:   draft.Content,
		ChannelID: draft.ChannelID,
		Cover: api.Cover{
			Type:   sel.Type(),
			Images: sel.URLs(),
		},
	}

	if draft.ID == "" {
		f.logger.Debug("creating article", "title", draft.Title, "cover_type", sel.Type())
		art, err := f.client.CreateArticle(ctx, payload)
		if err != nil {
			return Result{}, err
		}
		return Result{Article: art}, nil
	}

	f.logger.Debug("updating article", "id", draft.ID, "title", draft.Title, "cover_type", sel.Type())
	art, err := f.client.UpdateArticle(ctx, draft.ID, payload)
	if err != nil {
		return Result{}, err
	}
	return Result{Article: art, Updated: true}, nil
}
