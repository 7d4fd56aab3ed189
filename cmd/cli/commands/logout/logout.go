package logout

import (
	"context"
	"flag"
	"fmt"
	"os"

	"boardkit/cmd/cli/client"

	"github.com/google/subcommands"
)

type (
	LogoutCmd struct {
		server string
	}
)

func (*LogoutCmd) Name() string     { return "logout" }
func (*LogoutCmd) Synopsis() string { return "end the board session" }
func (*LogoutCmd) Usage() string {
	return `logout [-server url]:
  End the server session and forget the saved one
`
}

func (p *LogoutCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.server, "server", "", "Board server base URL")
}

func (p *LogoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := client.Connect(client.ServerURL(p.server))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to connect:", err)
		return subcommands.ExitFailure
	}

	// The local session is dropped even when the server call fails; a dead
	// session file would keep sending a stale cookie forever.
	if err := c.Auth.Logout(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "warning: the server logout failed:", err)
	}

	if err := c.ClearSession(); err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to clear the saved session:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("logged out")
	return subcommands.ExitSuccess
}
