package main

import (
	"context"
	"log"

	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/cli"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
