package main

import (
	"os"

	log "helios/logger"
	"helios/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
