package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/geek-project/geekctl/internal/cover"
)

// Cover is the cover payload of an article: the presentation mode plus the
// ordered image URL list.
type Cover struct {
	Type   cover.Type `json:"type"`
	Images []string   `json:"images"`
}

// ArticleDraft is the create/update request body. An empty ID means create.
type ArticleDraft struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	ChannelID int64  `json:"channel_id"`
	Cover     Cover  `json:"cover"`
}

// Article is an article as returned by the platform.
type Article struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	ChannelID    int64  `json:"channel_id"`
	Cover        Cover  `json:"cover"`
	Status       int    `json:"status"`
	PubDate      string `json:"pubdate"`
	CommentCount int    `json:"comment_count"`
}

// StatusLabel maps the platform's numeric review status to a display word.
func (a Article) StatusLabel() string {
	switch a.Status {
	case 0:
		return "draft"
	case 1:
		return "pending"
	case 2:
		return "published"
	case 3:
		return "failed"
	}
	return strconv.Itoa(a.Status)
}

// ListOptions selects a page of the article list.
type ListOptions struct {
	Page    int
	PerPage int
}

// ArticleList is one page of articles.
type ArticleList struct {
	Results    []Article `json:"results"`
	TotalCount int       `json:"total_count"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
}

// Channel is a publishing channel an article can be filed under.
type Channel struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type channelList struct {
	Channels []Channel `json:"channels"`
}

// CreateArticle publishes a new article.
func (c *Client) CreateArticle(ctx context.Context, draft ArticleDraft) (Article, error) {
	var art Article
	if err := c.post(ctx, "/articles", draft, &art); err != nil {
		return Article{}, err
	}
	return art, nil
}

// UpdateArticle replaces an existing article identified by id.
func (c *Client) UpdateArticle(ctx context.Context, id string, draft ArticleDraft) (Article, error) {
	draft.ID = id
	var art Article
	if err := c.put(ctx, "/articles/"+url.PathEscape(id), draft, &art); err != nil {
		return Article{}, err
	}
	return art, nil
}

// GetArticle fetches a single article by id, used to backfill the edit path.
func (c *Client) GetArticle(ctx context.Context, id string) (Article, error) {
	var art Article
	if err := c.get(ctx, "/articles/"+url.PathEscape(id), nil, &art); err != nil {
		return Article{}, err
	}
	return art, nil
}

// ListArticles fetches one page of the user's articles.
func (c *Client) ListArticles(ctx context.Context, opts ListOptions) (ArticleList, error) {
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(opts.PerPage))
	}

	var list ArticleList
	if err := c.get(ctx, "/articles", query, &list); err != nil {
		return ArticleList{}, err
	}
	return list, nil
}

// Channels fetches the publishing channel list.
func (c *Client) Channels(ctx context.Context) ([]Channel, error) {
	var list channelList
	if err := c.get(ctx, "/channels", nil, &list); err != nil {
		return nil, err
	}
	return list.Channels, nil
}
