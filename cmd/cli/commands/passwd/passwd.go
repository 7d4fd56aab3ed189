package passwd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"boardkit/cmd/cli/client"
	"boardkit/cmd/cli/tools/prompt"
	"boardkit/pkg/validation"

	"github.com/google/subcommands"
)

type (
	PasswdCmd struct {
		server string
	}
)

func (*PasswdCmd) Name() string     { return "passwd" }
func (*PasswdCmd) Synopsis() string { return "change the account password" }
func (*PasswdCmd) Usage() string {
	return `passwd [-server url]:
  Change the password of the logged-in account
`
}

func (p *PasswdCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.server, "server", "", "Board server base URL")
}

func (p *PasswdCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	current, err := prompt.Password("current password")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to read the password:", err)
		return subcommands.ExitFailure
	}

	next, err := prompt.Password("new password")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to read the password:", err)
		return subcommands.ExitFailure
	}

	confirm, err := prompt.Password("confirm new password")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to read the password:", err)
		return subcommands.ExitFailure
	}
	if r := validation.PasswordConfirm(next, confirm); !r.Valid {
		fmt.Fprintln(os.Stderr, "error:", r.Message)
		return subcommands.ExitUsageError
	}

	c, err := client.Connect(client.ServerURL(p.server))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to connect:", err)
		return subcommands.ExitFailure
	}

	if err := c.Users.ChangePassword(ctx, current, next); err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to change the password:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("password changed")
	return subcommands.ExitSuccess
}
