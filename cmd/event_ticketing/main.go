package main

import (
	"flag"
	"log"

	"github.com/stpnv0/EventTicketing/internal/app"
	"github.com/stpnv0/EventTicketing/internal/config"
)

func main() {
	envFile := flag.String("env", ".env", "dotenv file loaded before the environment")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
