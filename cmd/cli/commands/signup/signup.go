package signup

import (
	"context"
	"flag"
	"fmt"
	"os"

	"boardkit/cmd/cli/client"
	"boardkit/cmd/cli/tools/prompt"
	"boardkit/pkg/api/users"
	"boardkit/pkg/validation"

	"github.com/google/subcommands"
)

type (
	SignupCmd struct {
		server   string
		email    string
		nickname string
	}
)

func (*SignupCmd) Name() string     { return "signup" }
func (*SignupCmd) Synopsis() string { return "create a board account" }
func (*SignupCmd) Usage() string {
	return `signup [-server url] -email address -nickname name:
  Create a new account on the board server
`
}

func (p *SignupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.server, "server", "", "Board server base URL")
	f.StringVar(&p.email, "email", "", "Account email address")
	f.StringVar(&p.nickname, "nickname", "", "Display nickname")
}

func (p *SignupCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if r := validation.Email(p.email); !r.Valid {
		fmt.Fprintln(os.Stderr, "error:", r.Message)
		return subcommands.ExitUsageError
	}
	if r := validation.Nickname(p.nickname, validation.DefaultNicknameMax); !r.Valid {
		fmt.Fprintln(os.Stderr, "error:", r.Message)
		return subcommands.ExitUsageError
	}

	password, err := prompt.Password("password")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to read the password:", err)
		return subcommands.ExitFailure
	}
	if r := validation.Password(password); !r.Valid {
		fmt.Fprintln(os.Stderr, "error:", r.Message)
		return subcommands.ExitUsageError
	}

	confirm, err := prompt.Password("confirm password")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to read the password:", err)
		return subcommands.ExitFailure
	}
	if r := validation.PasswordConfirm(password, confirm); !r.Valid {
		fmt.Fprintln(os.Stderr, "error:", r.Message)
		return subcommands.ExitUsageError
	}

	c, err := client.Connect(client.ServerURL(p.server))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to connect:", err)
		return subcommands.ExitFailure
	}

	u, err := c.Users.SignUp(ctx, users.SignUpInput{
		Email:    p.email,
		Password: password,
		Nickname: p.nickname,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: signup failed:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("account created:", u.Email)
	return subcommands.ExitSuccess
}
