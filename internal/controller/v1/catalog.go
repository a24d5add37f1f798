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

// Catalog serves the slowly-changing reference data: objectives, risk
// titles/controls and predator sub-types.
type Catalog struct {
	fx.In

	ObjectiveService   *service.Objective
	RiskCatalogService *service.RiskCatalog
	PredatorService    *service.Predator
}

func RegisterCatalog(v1 *svr.V1, c Catalog) {
	v1.Get("/objectives", c.GetObjectives)
	v1.Post("/objectives", c.CreateObjective)
	v1.Get("/objectives/:objectiveId", c.GetObjectiveById)

	v1.Get("/risk-titles", c.GetRiskTitles)
	v1.Post("/risk-titles", c.CreateRiskTitle)
	v1.Put("/risk-titles/:riskTitleId", c.RenameRiskTitle)
	v1.Get("/risk-titles/:riskTitleId/controls", c.GetRiskControls)
	v1.Post("/risk-titles/:riskTitleId/controls", c.CreateRiskControl)
	v1.Put("/risk-controls/:riskControlId", c.UpdateRiskControl)
	v1.Delete("/risk-controls/:riskControlId", c.DeleteRiskControl)

	v1.Get("/predators", c.GetPredators)
	v1.Post("/predators", c.CreatePredator)
}

func (c *Catalog) GetObjectives(ctx *fiber.Ctx) error {
	objectives, err := c.ObjectiveService.GetObjectives(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(objectives)
}

func (c *Catalog) CreateObjective(ctx *fiber.Ctx) error {
	var req types.CreateObjectiveRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	objective, err := c.ObjectiveService.CreateObjective(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(objective)
}

func (c *Catalog) GetObjectiveById(ctx *fiber.Ctx) error {
	objectiveId, err := ctx.ParamsInt("objectiveId")
	if err != nil {
		return fterr.ErrInvalidReq.Msg("invalid request: objectiveId must be an integer")
	}

	objective, err := c.ObjectiveService.GetObjectiveById(ctx.UserContext(), objectiveId)
	if err != nil {
		return err
	}
	return ctx.JSON(objective)
}

func (c *Catalog) GetRiskTitles(ctx *fiber.Ctx) error {
	titles, err := c.RiskCatalogService.GetRiskTitles(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(titles)
}

func (c *Catalog) CreateRiskTitle(ctx *fiber.Ctx) error {
	var req types.CreateRiskTitleRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	title, err := c.RiskCatalogService.CreateRiskTitle(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(title)
}

func (c *Catalog) RenameRiskTitle(ctx *fiber.Ctx) error {
	riskTitleId, err := ctx.ParamsInt("riskTitleId")
	if err != nil {
		return fterr.ErrInvalidReq.Msg("invalid request: riskTitleId must be an integer")
	}

	var req types.CreateRiskTitleRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	title, err := c.RiskCatalogService.RenameRiskTitle(ctx.UserContext(), riskTitleId, req.Title)
	if err != nil {
		return err
	}
	return ctx.JSON(title)
}

func (c *Catalog) GetRiskControls(ctx *fiber.Ctx) error {
	riskTitleId, err := ctx.ParamsInt("riskTitleId")
	if err != nil {
		return fterr.ErrInvalidReq.Msg("invalid request: riskTitleId must be an integer")
	}

	controls, err := c.RiskCatalogService.GetRiskControls(ctx.UserContext(), riskTitleId)
	if err != nil {
		return err
	}
	return ctx.JSON(controls)
}

func (c *Catalog) CreateRiskControl(ctx *fiber.Ctx) error {
	riskTitleId, err := ctx.ParamsInt("riskTitleId")
	if err != nil {
		return fterr.ErrInvalidReq.Msg("invalid request: riskTitleId must be an integer")
	}

	var req types.CreateRiskControlRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	control, err := c.RiskCatalogService.CreateRiskControl(ctx.UserContext(), riskTitleId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(control)
}

func (c *Catalog) UpdateRiskControl(ctx *fiber.Ctx) error {
	riskControlId, err := ctx.ParamsInt("riskControlId")
	if err != nil {
		return fterr.ErrInvalidReq.Msg("invalid request: riskControlId must be an integer")
	}

	var req types.UpdateRiskControlRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	control, err := c.RiskCatalogService.UpdateRiskControl(ctx.UserContext(), riskControlId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(control)
}

func (c *Catalog) DeleteRiskControl(ctx *fiber.Ctx) error {
	riskControlId, err := ctx.ParamsInt("riskControlId")
	if err != nil {
		return fterr.ErrInvalidReq.Msg("invalid request: riskControlId must be an integer")
	}

	if err := c.RiskCatalogService.DeleteRiskControl(ctx.UserContext(), riskControlId); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Catalog) GetPredators(ctx *fiber.Ctx) error {
	predators, err := c.PredatorService.GetPredators(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(predators)
}

func (c *Catalog) CreatePredator(ctx *fiber.Ctx) error {
	var req types.CreatePredatorRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	predator, err := c.PredatorService.CreatePredator(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(predator)
}
