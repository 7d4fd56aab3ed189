// Package images uploads and manages image attachments. Uploads go out as
// multipart/form-data with the file plus a type tag.
package images

import (
	"context"
	"fmt"
	"io"
	"time"

	"boardkit/pkg/api"
	"boardkit/pkg/api/transport"
)

type (
	Client struct {
		t *transport.Client
	}

	// Kind tags what an uploaded image is used for. The backend rejects
	// anything outside the enumerated set, so unknown tags fail fast here.
	Kind string

	Image struct {
		ID        int64     `json:"id"`
		URL       string    `json:"url"`
		Kind      Kind      `json:"type"`
		CreatedAt time.Time `json:"createdAt"`
	}

	UploadInput struct {
		File        io.Reader
		FileName    string
		Kind        Kind
		ContentType string
	}
)

const (
	KindProfile       Kind = "PROFILE"
	KindPostOriginal  Kind = "POST_ORIGINAL"
	KindPostThumbnail Kind = "POST_THUMBNAIL"
)

func New(t *transport.Client) *Client {
	return &Client{t: t}
}

func (k Kind) valid() bool {
	switch k {
	case KindProfile, KindPostOriginal, KindPostThumbnail:
		return true
	}
	return false
}

func requireImageID(imageID int64) error {
	if imageID <= 0 {
		return api.Validation("an image id is required")
	}
	return nil
}

func (c *Client) Upload(ctx context.Context, in UploadInput) (*Image, error) {
	if in.File == nil {
		return nil, api.Validation("please choose a file to upload")
	}
	if !in.Kind.valid() {
		return nil, api.Validation("please choose a valid image type")
	}

	name := in.FileName
	if name == "" {
		name = "upload"
	}

	env, err := c.t.Post(ctx, "/images", &transport.Options{
		Body: transport.Multipart(&transport.MultipartPayload{
			Fields:          map[string]string{"type": string(in.Kind)},
			FileField:       "file",
			FileName:        name,
			File:            in.File,
			FileContentType: in.ContentType,
		}),
	})
	if err != nil {
		return nil, err
	}

	var img Image
	if err := env.DecodeData(&img); err != nil {
		return nil, fmt.Errorf("cannot decode the uploaded image: %w", err)
	}
	return &img, nil
}

func (c *Client) One(ctx context.Context, imageID int64) (*Image, error) {
	if err := requireImageID(imageID); err != nil {
		return nil, err
	}

	env, err := c.t.Get(ctx, fmt.Sprintf("/images/%d", imageID), nil)
	if err != nil {
		return nil, err
	}

	var img Image
	if err := env.DecodeData(&img); err != nil {
		return nil, fmt.Errorf("cannot decode the image: %w", err)
	}
	return &img, nil
}

func (c *Client) Remove(ctx context.Context, imageID int64) error {
	if err := requireImageID(imageID); err != nil {
		return err
	}

	_, err := c.t.Delete(ctx, fmt.Sprintf("/images/%d", imageID), nil)
	return err
}
