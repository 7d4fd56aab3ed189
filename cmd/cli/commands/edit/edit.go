package edit

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
	EditCmd struct {
		server  string
		id      int64
		title   string
		content string
		images  string
	}
)

func (*EditCmd) Name() string     { return "edit" }
func (*EditCmd) Synopsis() string { return "edit a board post" }
func (*EditCmd) Usage() string {
	return `edit [-server url] -id post [-title text] [-content text] [-images 1,2,3]:
  Update the given fields of an existing post
`
}

func (p *EditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.server, "server", "", "Board server base URL")
	f.Int64Var(&p.id, "id", 0, "Post id")
	f.StringVar(&p.title, "title", "", "New post title")
	f.StringVar(&p.content, "content", "", "New post content")
	f.StringVar(&p.images, "images", "", "Comma-separated uploaded image ids")
}

func (p *EditCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in posts.UpdateInput
	if p.title != "" {
		in.Title = &p.title
	}
	if p.content != "" {
		in.Content = &p.content
	}
	if p.images != "" {
		ids := posts.ParseImageIDs(strings.Split(p.images, ","))
		in.ImageIDs = &ids
	}

	c, err := client.Connect(client.ServerURL(p.server))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to connect:", err)
		return subcommands.ExitFailure
	}

	post, err := c.Posts.Update(ctx, p.id, in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to update the post:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("updated", post.ID)
	return subcommands.ExitSuccess
}
