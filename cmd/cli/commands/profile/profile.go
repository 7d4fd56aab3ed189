package profile

import (
	"context"
	"flag"
	"fmt"
	"os"

	"boardkit/cmd/cli/client"
	"boardkit/pkg/api/users"

	"github.com/google/subcommands"
)

type (
	ProfileCmd struct {
		server   string
		nickname string
		image    int64
	}
)

func (*ProfileCmd) Name() string     { return "profile" }
func (*ProfileCmd) Synopsis() string { return "update the logged-in profile" }
func (*ProfileCmd) Usage() string {
	return `profile [-server url] [-nickname name] [-image id]:
  Update the nickname or profile image of the logged-in account
`
}

func (p *ProfileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.server, "server", "", "Board server base URL")
	f.StringVar(&p.nickname, "nickname", "", "New display nickname")
	f.Int64Var(&p.image, "image", 0, "Uploaded profile image id")
}

func (p *ProfileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in users.UpdateInput
	if p.nickname != "" {
		in.Nickname = &p.nickname
	}
	if p.image > 0 {
		in.ProfileImageID = &p.image
	}

	c, err := client.Connect(client.ServerURL(p.server))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to connect:", err)
		return subcommands.ExitFailure
	}

	u, err := c.Users.UpdateMe(ctx, in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to update the profile:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("profile updated:", u.Nickname)
	return subcommands.ExitSuccess
}
