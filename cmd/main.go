package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "wordbook/docs"
	"wordbook/internal/cli"
)

// @title                       Wordbook API
// @version                     1.0
// @description                 Per-user word categories behind cookie sessions.
// @BasePath                    /
// @securityDefinitions.apikey  SessionCookie
// @in                          cookie
// @name                        pss_session
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
