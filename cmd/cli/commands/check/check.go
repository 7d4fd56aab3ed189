package check

import (
	"context"
	"flag"
	"fmt"
	"os"

	"boardkit/cmd/cli/client"

	"github.com/google/subcommands"
)

type (
	CheckCmd struct {
		server   string
		email    string
		nickname string
	}
)

func (*CheckCmd) Name() string     { return "check" }
func (*CheckCmd) Synopsis() string { return "check email or nickname availability" }
func (*CheckCmd) Usage() string {
	return `check [-server url] [-email address] [-nickname name]:
  Ask the server whether an email or nickname is still available
`
}

func (p *CheckCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.server, "server", "", "Board server base URL")
	f.StringVar(&p.email, "email", "", "Email address to check")
	f.StringVar(&p.nickname, "nickname", "", "Nickname to check")
}

func (p *CheckCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.email == "" && p.nickname == "" {
		fmt.Fprintln(os.Stderr, "error: pass -email or -nickname")
		f.Usage()
		return subcommands.ExitUsageError
	}

	c, err := client.Connect(client.ServerURL(p.server))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to connect:", err)
		return subcommands.ExitFailure
	}

	report := func(label string, available bool) {
		if available {
			fmt.Println(label, "is available")
		} else {
			fmt.Println(label, "is already taken")
		}
	}

	if p.email != "" {
		available, err := c.Users.CheckEmail(ctx, p.email)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: failed to check the email:", err)
			return subcommands.ExitFailure
		}
		report(p.email, available)
	}

	if p.nickname != "" {
		available, err := c.Users.CheckNickname(ctx, p.nickname)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: failed to check the nickname:", err)
			return subcommands.ExitFailure
		}
		report(p.nickname, available)
	}

	return subcommands.ExitSuccess
}
