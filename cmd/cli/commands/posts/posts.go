package posts

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"boardkit/cmd/cli/client"
	"boardkit/pkg/api"
	"boardkit/pkg/format"

	"github.com/google/subcommands"
)

type (
	PostsCmd struct {
		server string
		cursor string
		sort   string
		limit  int
	}
)

func (*PostsCmd) Name() string     { return "posts" }
func (*PostsCmd) Synopsis() string { return "list board posts" }
func (*PostsCmd) Usage() string {
	return `posts [-server url] [-cursor token] [-sort asc|desc] [-limit n]:
  List board posts, newest first by default
`
}

func (p *PostsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.server, "server", "", "Board server base URL")
	f.StringVar(&p.cursor, "cursor", "", "Continuation token from a previous page")
	f.StringVar(&p.sort, "sort", api.SortDesc, "Sort order (asc or desc)")
	f.IntVar(&p.limit, "limit", api.DefaultLimit, "Page size")
}

func (p *PostsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := client.Connect(client.ServerURL(p.server))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to connect:", err)
		return subcommands.ExitFailure
	}

	page, err := c.Posts.List(ctx, api.ListOptions{
		Cursor: p.cursor,
		Sort:   p.sort,
		Limit:  p.limit,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to list the posts:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("ID | TITLE | AUTHOR | LIKES | COMMENTS | WHEN")
	fmt.Println("-- | ----- | ------ | ----- | -------- | ----")
	for _, post := range page.Posts {
		fmt.Println(
			post.ID, "|",
			format.Truncate(post.Title, 26), "|",
			post.Author.Nickname, "|",
			format.Count(post.LikeCount), "|",
			format.Count(post.CommentCount), "|",
			format.RelativeTime(post.CreatedAt, time.Now()),
		)
	}

	if page.HasNext {
		fmt.Println()
		fmt.Println("next cursor:", page.NextCursor)
	}

	return subcommands.ExitSuccess
}
