package unregister

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
	UnregisterCmd struct {
		server string
		force  bool
	}
)

func (*UnregisterCmd) Name() string     { return "unregister" }
func (*UnregisterCmd) Synopsis() string { return "delete the logged-in account" }
func (*UnregisterCmd) Usage() string {
	return `unregister [-server url] [-force]:
  Delete the logged-in account and forget the session
`
}

func (p *UnregisterCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.server, "server", "", "Board server base URL")
	f.BoolVar(&p.force, "force", false, "Skip the confirmation prompt")
}

func (p *UnregisterCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.force && !prompt.Bool("delete the account permanently?") {
		fmt.Println("aborted")
		return subcommands.ExitSuccess
	}

	c, err := client.Connect(client.ServerURL(p.server))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to connect:", err)
		return subcommands.ExitFailure
	}

	if err := c.Users.DeleteMe(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to delete the account:", err)
		return subcommands.ExitFailure
	}

	if err := c.ClearSession(); err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to clear the saved session:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("account deleted")
	return subcommands.ExitSuccess
}
