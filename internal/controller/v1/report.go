package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"fieldtrack.dev/backend/internal/model/types"
	"fieldtrack.dev/backend/internal/server/svr"
	"fieldtrack.dev/backend/internal/service"
)

type Report struct {
	fx.In

	ReportService *service.Report
}

func RegisterReport(v1 *svr.V1, c Report) {
	v1.Get("/reports/objective", c.GetObjectiveReport)
}

// GetObjectiveReport builds a date-ranged compliance report for one
// objective in one project. The response envelope carries the objective's
// category; consumers branch on it to pick the generic or predator payload.
func (c *Report) GetObjectiveReport(ctx *fiber.Ctx) error {
	req := types.ObjectiveReportRequest{
		ProjectID:   ctx.QueryInt("projectId"),
		ObjectiveID: ctx.QueryInt("objectiveId"),
		StartDate:   ctx.Query("startDate"),
		EndDate:     ctx.Query("endDate"),
	}

	report, err := c.ReportService.BuildObjectiveReport(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(report)
}
