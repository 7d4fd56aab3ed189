package like

import (
	"context"
	"flag"
	"fmt"
	"os"

	"boardkit/cmd/cli/client"
	"boardkit/pkg/format"

	"github.com/google/subcommands"
)

type (
	LikeCmd struct {
		server string
		id     int64
		undo   bool
	}
)

func (*LikeCmd) Name() string     { return "like" }
func (*LikeCmd) Synopsis() string { return "like or unlike a post" }
func (*LikeCmd) Usage() string {
	return `like [-server url] -id post [-undo]:
  Like a post, or take the like back with -undo
`
}

func (p *LikeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.server, "server", "", "Board server base URL")
	f.Int64Var(&p.id, "id", 0, "Post id")
	f.BoolVar(&p.undo, "undo", false, "Remove the like instead")
}

func (p *LikeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := client.Connect(client.ServerURL(p.server))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to connect:", err)
		return subcommands.ExitFailure
	}

	if p.undo {
		s, err := c.Posts.Unlike(ctx, p.id)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: failed to remove the like:", err)
			return subcommands.ExitFailure
		}
		fmt.Println("likes:", format.Count(s.LikeCount))
		return subcommands.ExitSuccess
	}

	s, err := c.Posts.Like(ctx, p.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to like the post:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("likes:", format.Count(s.LikeCount))
	return subcommands.ExitSuccess
}
