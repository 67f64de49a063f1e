// Command server runs the syllabification HTTP API.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and the
// environment; run with -env to list the variables.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/heartmarshall/pantig-backend/internal/app"
	"github.com/heartmarshall/pantig-backend/internal/config"
)

func main() {
	envHelp := flag.Bool("env", false, "print configuration environment variables and exit")
	flag.Parse()

	if *envHelp {
		if err := config.Usage(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
