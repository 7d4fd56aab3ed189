package version

import (
	"context"
	"flag"
	"fmt"
	"runtime"

	"boardkit/pkg/constants"

	"github.com/google/subcommands"
)

type (
	VersionCmd struct {
	}
)

func (*VersionCmd) Name() string     { return "version" }
func (*VersionCmd) Synopsis() string { return "print the client version" }
func (*VersionCmd) Usage() string {
	return `version:
  Print the client version
`
}

func (p *VersionCmd) SetFlags(f *flag.FlagSet) {
}

func (p *VersionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Printf("boardkit v%s (api v%s) %s/%s\n", constants.Version, constants.ApiVersion, runtime.GOOS, runtime.GOARCH)
	return subcommands.ExitSuccess
}
