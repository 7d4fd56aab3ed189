package upload

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"boardkit/cmd/cli/client"
	"boardkit/pkg/api/images"

	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type (
	UploadCmd struct {
		server string
		file   string
		kind   string
	}
)

func (*UploadCmd) Name() string     { return "upload" }
func (*UploadCmd) Synopsis() string { return "upload an image" }
func (*UploadCmd) Usage() string {
	return `upload [-server url] -file path [-type PROFILE|POST_ORIGINAL|POST_THUMBNAIL]:
  Upload an image and print its id
`
}

func (p *UploadCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.server, "server", "", "Board server base URL")
	f.StringVar(&p.file, "file", "", "Path of the image file")
	f.StringVar(&p.kind, "type", string(images.KindPostOriginal), "Image type tag")
}

func (p *UploadCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.file == "" {
		fmt.Fprintln(os.Stderr, "error: pass -file")
		f.Usage()
		return subcommands.ExitUsageError
	}

	file, err := os.OpenFile(p.file, os.O_RDONLY, 0)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: cannot open the file:", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	fi, err := file.Stat()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: cannot stat the file:", err)
		return subcommands.ExitFailure
	}

	c, err := client.Connect(client.ServerURL(p.server))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to connect:", err)
		return subcommands.ExitFailure
	}

	pg := progressbar.DefaultBytes(fi.Size(), "uploading")
	defer func() {
		pg.Finish()
		pg.Clear()
		pg.Close()
	}()

	reader := progressbar.NewReader(file, pg)
	img, err := c.Images.Upload(ctx, images.UploadInput{
		File:     &reader,
		FileName: filepath.Base(p.file),
		Kind:     images.Kind(p.kind),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: the upload failed:", err)
		return subcommands.ExitFailure
	}

	fmt.Println(img.ID)
	return subcommands.ExitSuccess
}
