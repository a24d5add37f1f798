package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"fieldtrack.dev/backend/internal/model/types"
	"fieldtrack.dev/backend/internal/pkg/fterr"
	"fieldtrack.dev/backend/internal/server/svr"
	"fieldtrack.dev/backend/internal/service"
	"fieldtrack.dev/backend/internal/util/rekuest"
)

type Activity struct {
	fx.In

	ObjectiveLinkService     *service.ObjectiveLink
	ActivityObjectiveService *service.ActivityObjective
	PredatorService          *service.Predator
}

func RegisterActivity(v1 *svr.V1, c Activity) {
	v1.Get("/activities/:activityId/objectives", c.GetActivityObjectives)
	v1.Put("/activities/:activityId/objectives/:objectiveId", c.UpdateActivityObjective)
	v1.Get("/activities/:activityId/predators", c.GetActivityPredators)
	v1.Post("/activities/:activityId/predators", c.CreateActivityPredator)
}

// GetActivityObjectives guarantees bridge completeness before returning the
// activity's objective rows, so the UI can render every objective of the
// owning project, filled or not.
func (c *Activity) GetActivityObjectives(ctx *fiber.Ctx) error {
	activityId, err := ctx.ParamsInt("activityId")
	if err != nil {
		return fterr.ErrInvalidReq.Msg("invalid request: activityId must be an integer")
	}

	rows, err := c.ObjectiveLinkService.EnsureActivityObjectives(ctx.UserContext(), activityId)
	if err != nil {
		return err
	}
	return ctx.JSON(rows)
}

func (c *Activity) UpdateActivityObjective(ctx *fiber.Ctx) error {
	activityId, err := ctx.ParamsInt("activityId")
	if err != nil {
		return fterr.ErrInvalidReq.Msg("invalid request: activityId must be an integer")
	}
	objectiveId, err := ctx.ParamsInt("objectiveId")
	if err != nil {
		return fterr.ErrInvalidReq.Msg("invalid request: objectiveId must be an integer")
	}

	var req types.UpdateActivityObjectiveRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	if err := c.ActivityObjectiveService.UpdateAmount(ctx.UserContext(), activityId, objectiveId, req.Amount); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Activity) GetActivityPredators(ctx *fiber.Ctx) error {
	activityId, err := ctx.ParamsInt("activityId")
	if err != nil {
		return fterr.ErrInvalidReq.Msg("invalid request: activityId must be an integer")
	}

	records, err := c.PredatorService.GetActivityPredators(ctx.UserContext(), activityId)
	if err != nil {
		return err
	}
	return ctx.JSON(records)
}

func (c *Activity) CreateActivityPredator(ctx *fiber.Ctx) error {
	activityId, err := ctx.ParamsInt("activityId")
	if err != nil {
		return fterr.ErrInvalidReq.Msg("invalid request: activityId must be an integer")
	}

	var req types.CreateActivityPredatorRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	record, err := c.PredatorService.CreateActivityPredator(ctx.UserContext(), activityId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(record)
}
