package main

import (
	"github.com/nmaupu/gofluxx/cli"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred")
	}
}
