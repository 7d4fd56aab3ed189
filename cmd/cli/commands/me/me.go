package me

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
	MeCmd struct {
		server string
	}
)

func (*MeCmd) Name() string     { return "me" }
func (*MeCmd) Synopsis() string { return "show the logged-in profile" }
func (*MeCmd) Usage() string {
	return `me [-server url]:
  Show the profile of the logged-in account
`
}

func (p *MeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.server, "server", "", "Board server base URL")
}

func (p *MeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := client.Connect(client.ServerURL(p.server))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to connect:", err)
		return subcommands.ExitFailure
	}

	u, err := c.Users.Me(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to load the profile:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("ID:      ", u.ID)
	fmt.Println("Email:   ", u.Email)
	fmt.Println("Nickname:", u.Nickname)
	if u.ProfileImageID > 0 {
		fmt.Println("Image:   ", u.ProfileImageID)
	}
	fmt.Println("Joined:  ", format.Date(u.CreatedAt, false))

	return subcommands.ExitSuccess
}
