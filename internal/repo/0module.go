package repo

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("repo", fx.Provide(
		NewRisk,
		NewProject,
		NewActivity,
		NewPredator,
		NewObjective,
		NewRiskTitle,
		NewRiskControl,
		NewActivityPredator,
		NewProjectObjective,
		NewActivityObjective,
	))
}
