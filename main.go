package main

import (
	"flag"
	"log"

	"github.com/clearwatch/clearwatch-backend/cmd"
)

func main() {
	var (
		shouldRunMigrations = flag.Bool("migrations", false, "run database migrations")
		shouldRunServer     = flag.Bool("server", false, "run the screening API server")
	)
	flag.Parse()

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}

	if *shouldRunServer {
		if err := cmd.RunServer(); err != nil {
			log.Fatal(err)
		}
	}
}
