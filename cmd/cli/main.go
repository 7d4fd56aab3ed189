package main

import (
	"context"
	"flag"
	"os"

	"boardkit/cmd/cli/commands/check"
	"boardkit/cmd/cli/commands/comment"
	"boardkit/cmd/cli/commands/create"
	"boardkit/cmd/cli/commands/edit"
	"boardkit/cmd/cli/commands/like"
	"boardkit/cmd/cli/commands/login"
	"boardkit/cmd/cli/commands/logout"
	"boardkit/cmd/cli/commands/me"
	"boardkit/cmd/cli/commands/passwd"
	"boardkit/cmd/cli/commands/posts"
	"boardkit/cmd/cli/commands/profile"
	"boardkit/cmd/cli/commands/remove"
	"boardkit/cmd/cli/commands/show"
	"boardkit/cmd/cli/commands/signup"
	"boardkit/cmd/cli/commands/unregister"
	"boardkit/cmd/cli/commands/upload"
	"boardkit/cmd/cli/commands/version"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "help")
	subcommands.Register(subcommands.FlagsCommand(), "help")
	subcommands.Register(subcommands.CommandsCommand(), "help")

	subcommands.Register(&login.LoginCmd{}, "account")
	subcommands.Register(&logout.LogoutCmd{}, "account")
	subcommands.Register(&signup.SignupCmd{}, "account")
	subcommands.Register(&me.MeCmd{}, "account")
	subcommands.Register(&profile.ProfileCmd{}, "account")
	subcommands.Register(&passwd.PasswdCmd{}, "account")
	subcommands.Register(&unregister.UnregisterCmd{}, "account")
	subcommands.Register(&check.CheckCmd{}, "account")

	subcommands.Register(&posts.PostsCmd{}, "board")
	subcommands.Register(&show.ShowCmd{}, "board")
	subcommands.Register(&create.CreateCmd{}, "board")
	subcommands.Register(&edit.EditCmd{}, "board")
	subcommands.Register(&remove.RemoveCmd{}, "board")
	subcommands.Register(&like.LikeCmd{}, "board")
	subcommands.Register(&comment.CommentCmd{}, "board")
	subcommands.Register(&upload.UploadCmd{}, "board")

	subcommands.Register(&version.VersionCmd{}, "help")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
