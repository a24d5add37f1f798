package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"fieldtrack.dev/backend/internal/model/types"
	"fieldtrack.dev/backend/internal/pkg/flog"
	"fieldtrack.dev/backend/internal/pkg/fterr"
	"fieldtrack.dev/backend/internal/server/svr"
	"fieldtrack.dev/backend/internal/service"
	"fieldtrack.dev/backend/internal/util/rekuest"
)

type Risk struct {
	fx.In

	RiskService *service.Risk
}

func RegisterRisk(v1 *svr.V1, c Risk) {
	v1.Put("/risks/:riskId", c.UpdateRisk)
}

// UpdateRisk re-rates a risk and replaces the activity's selected controls
// for the risk's title with exactly the submitted set.
func (c *Risk) UpdateRisk(ctx *fiber.Ctx) error {
	riskId, err := ctx.ParamsInt("riskId")
	if err != nil {
		return fterr.ErrInvalidReq.Msg("invalid request: riskId must be an integer")
	}

	var req types.UpdateRiskRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	flog.InfoFrom(ctx, "risk.update.request").
		Int("riskId", riskId).
		Int("activityId", req.ActivityID).
		Int("chosenControls", len(req.ChosenControlIDs)).
		Msg("Replacing risk control selection")

	controls, err := c.RiskService.UpdateRisk(ctx.UserContext(), riskId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(controls)
}
