package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"boardkit/cmd/web/server"
	"boardkit/cmd/web/server/config"
	"boardkit/pkg/constants"
)

func main() {
	configPath := flag.String("config", "/var/lib/boardkit/config.json", "Path to the JSON configuration file")
	flag.Parse()

	fmt.Printf("boardkit web v%s (%s/%s)\n", constants.Version, runtime.GOOS, runtime.GOARCH)

	c, err := config.Load(*configPath)
	if err != nil {
		slog.Error("cannot load the configuration", "path", *configPath, "err", err)
		os.Exit(1)
	}

	s, err := server.NewServer(c)
	if err != nil {
		slog.Error("cannot build the web server", "err", err)
		os.Exit(1)
	}

	slog.Info("serving the board assets", "port", c.Server.Port, "root", c.Root, "production", c.Production)
	if err := s.Server.ListenAndServe(); err != nil {
		slog.Error("the web server stopped", "err", err)
		os.Exit(1)
	}
}
