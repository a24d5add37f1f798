package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"fieldtrack.dev/backend/internal/pkg/fterr"
	"fieldtrack.dev/backend/internal/server/svr"
	"fieldtrack.dev/backend/internal/service"
)

type Project struct {
	fx.In

	ProjectService *service.Project
}

func RegisterProject(v1 *svr.V1, c Project) {
	v1.Get("/projects/:projectId/activities", c.GetProjectActivities)
	v1.Post("/projects/:projectId/objectives/:objectiveId", c.LinkObjective)
	v1.Delete("/projects/:projectId/objectives/:objectiveId", c.UnlinkObjective)
}

func (c *Project) GetProjectActivities(ctx *fiber.Ctx) error {
	projectId, err := ctx.ParamsInt("projectId")
	if err != nil {
		return fterr.ErrInvalidReq.Msg("invalid request: projectId must be an integer")
	}

	activities, err := c.ProjectService.GetProjectActivities(ctx.UserContext(), projectId)
	if err != nil {
		return err
	}
	return ctx.JSON(activities)
}

func (c *Project) LinkObjective(ctx *fiber.Ctx) error {
	projectId, err := ctx.ParamsInt("projectId")
	if err != nil {
		return fterr.ErrInvalidReq.Msg("invalid request: projectId must be an integer")
	}
	objectiveId, err := ctx.ParamsInt("objectiveId")
	if err != nil {
		return fterr.ErrInvalidReq.Msg("invalid request: objectiveId must be an integer")
	}

	pair, err := c.ProjectService.LinkObjective(ctx.UserContext(), projectId, objectiveId)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(pair)
}

func (c *Project) UnlinkObjective(ctx *fiber.Ctx) error {
	projectId, err := ctx.ParamsInt("projectId")
	if err != nil {
		return fterr.ErrInvalidReq.Msg("invalid request: projectId must be an integer")
	}
	objectiveId, err := ctx.ParamsInt("objectiveId")
	if err != nil {
		return fterr.ErrInvalidReq.Msg("invalid request: objectiveId must be an integer")
	}

	if err := c.ProjectService.UnlinkObjective(ctx.UserContext(), projectId, objectiveId); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
