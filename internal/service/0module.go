package service

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("service", fx.Provide(
		NewRisk,
		NewHealth,
		NewReport,
		NewProject,
		NewPredator,
		NewObjective,
		NewRiskCatalog,
		NewObjectiveLink,
		NewActivityObjective,
	))
}
