package server

import (
	"go.uber.org/fx"

	"fieldtrack.dev/backend/internal/server/httpserver"
	"fieldtrack.dev/backend/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
