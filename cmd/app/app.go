package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"fieldtrack.dev/backend/cmd/app/server"
	"fieldtrack.dev/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "fieldtrack",
		Description: "The FieldTrack conservation field-work backend. Built with Go, fiber, bun and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
