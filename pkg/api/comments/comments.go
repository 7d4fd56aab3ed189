// Package comments exposes the comment operations attached to board posts.
package comments

import (
	"context"
	"fmt"
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

	Comment struct {
		ID        int64     `json:"id"`
		PostID    int64     `json:"postId"`
		Content   string    `json:"contents"`
		Author    Author    `json:"author"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}

	Page struct {
		Comments   []Comment `json:"comments"`
		NextCursor string    `json:"nextCursor"`
		HasNext    bool      `json:"hasNext"`
	}
)

const (
	ContentMinLen = 1
	ContentMaxLen = 1000
)

func New(t *transport.Client) *Client {
	return &Client{t: t}
}

func requirePostID(postID int64) error {
	if postID <= 0 {
		return api.Validation("a post id is required")
	}
	return nil
}

func requireCommentID(commentID int64) error {
	if commentID <= 0 {
		return api.Validation("a comment id is required")
	}
	return nil
}

func validateContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return api.Validation("please enter a comment")
	}
	if n := len([]rune(trimmed)); n < ContentMinLen || n > ContentMaxLen {
		return api.Validation(fmt.Sprintf("the comment must be %d to %d characters long", ContentMinLen, ContentMaxLen))
	}
	return nil
}

func (c *Client) Create(ctx context.Context, postID int64, content string) (*Comment, error) {
	if err := requirePostID(postID); err != nil {
		return nil, err
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	env, err := c.t.Post(ctx, fmt.Sprintf("/posts/%d/comments", postID), &transport.Options{
		Body: transport.JSON(map[string]any{
			"contents": strings.TrimSpace(content),
		}),
	})
	if err != nil {
		return nil, err
	}

	var cm Comment
	if err := env.DecodeData(&cm); err != nil {
		return nil, fmt.Errorf("cannot decode the created comment: %w", err)
	}
	return &cm, nil
}

func (c *Client) List(ctx context.Context, postID int64, opts api.ListOptions) (*Page, error) {
	if err := requirePostID(postID); err != nil {
		return nil, err
	}

	env, err := c.t.Get(ctx, fmt.Sprintf("/posts/%d/comments", postID), &transport.Options{
		Query: opts.Query(),
	})
	if err != nil {
		return nil, err
	}

	var page Page
	if err := env.DecodeData(&page); err != nil {
		return nil, fmt.Errorf("cannot decode the comment page: %w", err)
	}
	return &page, nil
}

func (c *Client) Update(ctx context.Context, commentID int64, content string) (*Comment, error) {
	if err := requireCommentID(commentID); err != nil {
		return nil, err
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	env, err := c.t.Patch(ctx, fmt.Sprintf("/comments/%d", commentID), &transport.Options{
		Body: transport.JSON(map[string]any{
			"contents": strings.TrimSpace(content),
		}),
	})
	if err != nil {
		return nil, err
	}

	var cm Comment
	if err := env.DecodeData(&cm); err != nil {
		return nil, fmt.Errorf("cannot decode the updated comment: %w", err)
	}
	return &cm, nil
}

func (c *Client) Remove(ctx context.Context, commentID int64) error {
	if err := requireCommentID(commentID); err != nil {
		return err
	}

	_, err := c.t.Delete(ctx, fmt.Sprintf("/comments/%d", commentID), nil)
	return err
}
