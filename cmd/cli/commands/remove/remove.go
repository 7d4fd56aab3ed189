package remove

import (
	"context"
	"flag"
	"fmt"
	"os"

	"boardkit/cmd/cli/client"
	"boardkit/cmd/cli/tools/prompt"

	"github.com/google/subcommands"
)

type (
	RemoveCmd struct {
		server string
		id     int64
		force  bool
	}
)

func (*RemoveCmd) Name() string     { return "remove" }
func (*RemoveCmd) Synopsis() string { return "delete a board post" }
func (*RemoveCmd) Usage() string {
	return `remove [-server url] -id post [-force]:
  Delete one of your posts
`
}

func (p *RemoveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.server, "server", "", "Board server base URL")
	f.Int64Var(&p.id, "id", 0, "Post id")
	f.BoolVar(&p.force, "force", false, "Skip the confirmation prompt")
}

func (p *RemoveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.force && !prompt.Bool(fmt.Sprintf("delete post %d?", p.id)) {
		fmt.Println("aborted")
		return subcommands.ExitSuccess
	}

	c, err := client.Connect(client.ServerURL(p.server))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to connect:", err)
		return subcommands.ExitFailure
	}

	if err := c.Posts.Remove(ctx, p.id); err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to delete the post:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("deleted", p.id)
	return subcommands.ExitSuccess
}
