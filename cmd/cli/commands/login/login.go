package login

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
	LoginCmd struct {
		server string
		email  string
	}
)

func (*LoginCmd) Name() string     { return "login" }
func (*LoginCmd) Synopsis() string { return "log into the board server" }
func (*LoginCmd) Usage() string {
	return `login [-server url] [-email address]:
  Log into the board server and save the session
`
}

func (p *LoginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.server, "server", "", "Board server base URL")
	f.StringVar(&p.email, "email", "", "Account email address")
}

func (p *LoginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := client.Connect(client.ServerURL(p.server))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to connect:", err)
		return subcommands.ExitFailure
	}

	email := p.email
	if email == "" {
		email, err = prompt.Line("Email")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: failed to read the email:", err)
			return subcommands.ExitFailure
		}
	}

	password, err := prompt.Password(fmt.Sprintf("password for %s", email))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to read the password:", err)
		return subcommands.ExitFailure
	}

	u, err := c.Auth.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: login failed:", err)
		return subcommands.ExitFailure
	}

	if err := c.SaveSession(); err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to save the session:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("logged in as", u.Nickname)
	return subcommands.ExitSuccess
}
