// Package posts exposes the board post operations: create, list, read,
// update, delete and like. All input checking happens here, before any
// network attempt; the server remains authoritative.
package posts

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"boardkit/pkg/api"
	"boardkit/pkg/api/transport"
)

type (
	Client struct {
		t *transport.Client
	}

	Author struct {
		ID             int64  `json:"id"`
		Nickname       string `json:"nickname"`
		ProfileImageID int64  `json:"profileImageId,omitempty"`
	}

	Post struct {
		ID           int64     `json:"id"`
		Title        string    `json:"title"`
		Content      string    `json:"content"`
		Author       Author    `json:"author"`
		ImageIDs     []int64   `json:"imageIds"`
		LikeCount    int       `json:"likeCount"`
		CommentCount int       `json:"commentCount"`
		ViewCount    int       `json:"viewCount"`
		Liked        bool      `json:"liked"`
		CreatedAt    time.Time `json:"createdAt"`
		UpdatedAt    time.Time `json:"updatedAt"`
	}

	Page struct {
		Posts      []Post `json:"posts"`
		NextCursor string `json:"nextCursor"`
		HasNext    bool   `json:"hasNext"`
	}

	LikeStatus struct {
		Liked     bool `json:"liked"`
		LikeCount int  `json:"likeCount"`
	}

	CreateInput struct {
		Title    string
		Content  string
		ImageIDs []int64
	}

	// UpdateInput carries the fields to change; nil fields are left alone.
	// At least one field must be set.
	UpdateInput struct {
		Title    *string
		Content  *string
		ImageIDs *[]int64
	}
)

const (
	TitleMinLen = 2
	TitleMaxLen = 26

	ContentMinLen = 2
	ContentMaxLen = 10000
)

func New(t *transport.Client) *Client {
	return &Client{t: t}
}

func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return api.Validation("please enter a title")
	}
	if n := len([]rune(trimmed)); n < TitleMinLen || n > TitleMaxLen {
		return api.Validation(fmt.Sprintf("the title must be %d to %d characters long", TitleMinLen, TitleMaxLen))
	}
	return nil
}

func validateContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return api.Validation("please enter the post content")
	}
	if n := len([]rune(trimmed)); n < ContentMinLen || n > ContentMaxLen {
		return api.Validation(fmt.Sprintf("the content must be %d to %d characters long", ContentMinLen, ContentMaxLen))
	}
	return nil
}

func requirePostID(postID int64) error {
	if postID <= 0 {
		return api.Validation("a post id is required")
	}
	return nil
}

// ParseImageIDs coerces raw id values into numeric ids, dropping entries
// that do not parse.
func ParseImageIDs(values []string) []int64 {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func (c *Client) Create(ctx context.Context, in CreateInput) (*Post, error) {
	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}
	if err := validateContent(in.Content); err != nil {
		return nil, err
	}

	imageIDs := in.ImageIDs
	if imageIDs == nil {
		imageIDs = []int64{}
	}

	env, err := c.t.Post(ctx, "/posts", &transport.Options{
		Body: transport.JSON(map[string]any{
			"title":    strings.TrimSpace(in.Title),
			"content":  strings.TrimSpace(in.Content),
			"imageIds": imageIDs,
		}),
	})
	if err != nil {
		return nil, err
	}

	var p Post
	if err := env.DecodeData(&p); err != nil {
		return nil, fmt.Errorf("cannot decode the created post: %w", err)
	}
	return &p, nil
}

func (c *Client) List(ctx context.Context, opts api.ListOptions) (*Page, error) {
	env, err := c.t.Get(ctx, "/posts", &transport.Options{Query: opts.Query()})
	if err != nil {
		return nil, err
	}

	var page Page
	if err := env.DecodeData(&page); err != nil {
		return nil, fmt.Errorf("cannot decode the post page: %w", err)
	}
	return &page, nil
}

func (c *Client) One(ctx context.Context, postID int64) (*Post, error) {
	if err := requirePostID(postID); err != nil {
		return nil, err
	}

	env, err := c.t.Get(ctx, fmt.Sprintf("/posts/%d", postID), nil)
	if err != nil {
		return nil, err
	}

	var p Post
	if err := env.DecodeData(&p); err != nil {
		return nil, fmt.Errorf("cannot decode the post: %w", err)
	}
	return &p, nil
}

func (c *Client) Update(ctx context.Context, postID int64, in UpdateInput) (*Post, error) {
	if err := requirePostID(postID); err != nil {
		return nil, err
	}

	payload := make(map[string]any)

	if in.Title != nil {
		if err := validateTitle(*in.Title); err != nil {
			return nil, err
		}
		payload["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		if err := validateContent(*in.Content); err != nil {
			return nil, err
		}
		payload["content"] = strings.TrimSpace(*in.Content)
	}
	if in.ImageIDs != nil {
		ids := *in.ImageIDs
		if ids == nil {
			ids = []int64{}
		}
		payload["imageIds"] = ids
	}

	if len(payload) == 0 {
		return nil, api.Validation("nothing to update")
	}

	env, err := c.t.Patch(ctx, fmt.Sprintf("/posts/%d", postID), &transport.Options{
		Body: transport.JSON(payload),
	})
	if err != nil {
		return nil, err
	}

	var p Post
	if err := env.DecodeData(&p); err != nil {
		return nil, fmt.Errorf("cannot decode the updated post: %w", err)
	}
	return &p, nil
}

func (c *Client) Remove(ctx context.Context, postID int64) error {
	if err := requirePostID(postID); err != nil {
		return err
	}

	_, err := c.t.Delete(ctx, fmt.Sprintf("/posts/%d", postID), nil)
	return err
}

func (c *Client) Like(ctx context.Context, postID int64) (*LikeStatus, error) {
	if err := requirePostID(postID); err != nil {
		return nil, err
	}

	env, err := c.t.Post(ctx, fmt.Sprintf("/posts/%d/likes", postID), nil)
	if err != nil {
		return nil, err
	}

	var s LikeStatus
	if err := env.DecodeData(&s); err != nil {
		return nil, fmt.Errorf("cannot decode the like status: %w", err)
	}
	return &s, nil
}

func (c *Client) Unlike(ctx context.Context, postID int64) (*LikeStatus, error) {
	if err := requirePostID(postID); err != nil {
		return nil, err
	}

	env, err := c.t.Delete(ctx, fmt.Sprintf("/posts/%d/likes", postID), nil)
	if err != nil {
		return nil, err
	}

	var s LikeStatus
	if err := env.DecodeData(&s); err != nil {
		return nil, fmt.Errorf("cannot decode the like status: %w", err)
	}
	return &s, nil
}
