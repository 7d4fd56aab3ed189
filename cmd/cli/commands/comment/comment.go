package comment

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
	CommentCmd struct {
		server string
		post   int64
		add    string
		edit   int64
		text   string
		del    int64
		cursor string
		limit  int
	}
)

func (*CommentCmd) Name() string     { return "comment" }
func (*CommentCmd) Synopsis() string { return "list, add, edit or delete comments" }
func (*CommentCmd) Usage() string {
	return `comment [-server url] -post id [-add text | -edit id -text text | -delete id]:
  Without an action flag, list the comments of a post
`
}

func (p *CommentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.server, "server", "", "Board server base URL")
	f.Int64Var(&p.post, "post", 0, "Post id")
	f.StringVar(&p.add, "add", "", "Add a comment with this text")
	f.Int64Var(&p.edit, "edit", 0, "Edit the comment with this id")
	f.StringVar(&p.text, "text", "", "New text for -edit")
	f.Int64Var(&p.del, "delete", 0, "Delete the comment with this id")
	f.StringVar(&p.cursor, "cursor", "", "Continuation token from a previous page")
	f.IntVar(&p.limit, "limit", api.DefaultLimit, "Page size")
}

func (p *CommentCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := client.Connect(client.ServerURL(p.server))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to connect:", err)
		return subcommands.ExitFailure
	}

	switch {
	case p.add != "":
		cm, err := c.Comments.Create(ctx, p.post, p.add)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: failed to add the comment:", err)
			return subcommands.ExitFailure
		}
		fmt.Println(cm.ID)

	case p.edit > 0:
		cm, err := c.Comments.Update(ctx, p.edit, p.text)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: failed to edit the comment:", err)
			return subcommands.ExitFailure
		}
		fmt.Println("updated", cm.ID)

	case p.del > 0:
		if err := c.Comments.Remove(ctx, p.del); err != nil {
			fmt.Fprintln(os.Stderr, "error: failed to delete the comment:", err)
			return subcommands.ExitFailure
		}
		fmt.Println("deleted", p.del)

	default:
		page, err := c.Comments.List(ctx, p.post, api.ListOptions{
			Cursor: p.cursor,
			Limit:  p.limit,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: failed to list the comments:", err)
			return subcommands.ExitFailure
		}

		for _, cm := range page.Comments {
			fmt.Printf("[%d] %s (%s): %s\n",
				cm.ID,
				cm.Author.Nickname,
				format.RelativeTime(cm.CreatedAt, time.Now()),
				cm.Content,
			)
		}
		if page.HasNext {
			fmt.Println()
			fmt.Println("next cursor:", page.NextCursor)
		}
	}

	return subcommands.ExitSuccess
}
