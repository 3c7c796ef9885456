package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/appsprov/internal/cli"
	"github.com/dmitrijs2005/appsprov/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	err = app.Run(ctx, os.Args[1:])
	// Sync on a terminal stderr may fail with EINVAL; nothing is lost then.
	_ = app.Close()

	if err != nil {
		log.Fatalf("%v", err)
	}

}
