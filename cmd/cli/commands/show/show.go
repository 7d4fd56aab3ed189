package show

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"boardkit/cmd/cli/client"
	"boardkit/pkg/api"
	"boardkit/pkg/api/comments"
	"boardkit/pkg/api/posts"
	"boardkit/pkg/format"

	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

type (
	ShowCmd struct {
		server string
		id     int64
	}
)

func (*ShowCmd) Name() string     { return "show" }
func (*ShowCmd) Synopsis() string { return "show one post with its comments" }
func (*ShowCmd) Usage() string {
	return `show [-server url] -id post:
  Show a post and its latest comments
`
}

func (p *ShowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.server, "server", "", "Board server base URL")
	f.Int64Var(&p.id, "id", 0, "Post id")
}

func (p *ShowCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := client.Connect(client.ServerURL(p.server))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to connect:", err)
		return subcommands.ExitFailure
	}

	// The post and its comments are independent reads; fire both and wait.
	// A plain group is used on purpose: one failing must not cancel the
	// other.
	var (
		g        errgroup.Group
		post     *posts.Post
		page     *comments.Page
		pageErr  error
	)

	g.Go(func() error {
		var err error
		post, err = c.Posts.One(ctx, p.id)
		return err
	})
	g.Go(func() error {
		page, pageErr = c.Comments.List(ctx, p.id, api.ListOptions{})
		return nil
	})

	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to load the post:", err)
		return subcommands.ExitFailure
	}

	fmt.Println(post.Title)
	fmt.Println("by", post.Author.Nickname, "--", format.Date(post.CreatedAt, true))
	fmt.Println()
	fmt.Println(post.Content)
	fmt.Println()
	fmt.Printf("views %s  likes %s  comments %s\n",
		format.Count(post.ViewCount),
		format.Count(post.LikeCount),
		format.Count(post.CommentCount),
	)

	if pageErr != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to load the comments:", pageErr)
		return subcommands.ExitSuccess
	}

	if len(page.Comments) > 0 {
		fmt.Println()
		fmt.Println("COMMENTS")
		for _, cm := range page.Comments {
			fmt.Printf("[%d] %s (%s): %s\n",
				cm.ID,
				cm.Author.Nickname,
				format.RelativeTime(cm.CreatedAt, time.Now()),
				cm.Content,
			)
		}
	}

	return subcommands.ExitSuccess
}
