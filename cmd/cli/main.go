package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/craftconnect/internal/buildinfo"
	"github.com/dmitrijs2005/craftconnect/internal/client/cli"
	"github.com/dmitrijs2005/craftconnect/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, cleanup, err := cli.Setup(ctx, cfg, os.Stderr)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer cleanup()

	app.Run(ctx)

}
