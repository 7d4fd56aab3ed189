package create

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"boardkit/cmd/cli/client"
	"boardkit/pkg/api/posts"

	"github.com/google/subcommands"
)

type (
	CreateCmd struct {
		server  string
		title   string
		content string
		images  string
	}
)

func (*CreateCmd) Name() string     { return "create" }
func (*CreateCmd) Synopsis() string { return "create a board post" }
func (*CreateCmd) Usage() string {
	return `create [-server url] -title text -content text [-images 1,2,3]:
  Create a new board post
`
}

func (p *CreateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.server, "server", "", "Board server base URL")
	f.StringVar(&p.title, "title", "", "Post title")
	f.StringVar(&p.content, "content", "", "Post content")
	f.StringVar(&p.images, "images", "", "Comma-separated uploaded image ids")
}

func (p *CreateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := client.Connect(client.ServerURL(p.server))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to connect:", err)
		return subcommands.ExitFailure
	}

	var imageIDs []int64
	if p.images != "" {
		imageIDs = posts.ParseImageIDs(strings.Split(p.images, ","))
	}

	post, err := c.Posts.Create(ctx, posts.CreateInput{
		Title:    p.title,
		Content:  p.content,
		ImageIDs: imageIDs,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to create the post:", err)
		return subcommands.ExitFailure
	}

	fmt.Println(post.ID)
	return subcommands.ExitSuccess
}
