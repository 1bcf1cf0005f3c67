package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/christopherjparrett/TheUniverse/internal/api/dto"
	"github.com/christopherjparrett/TheUniverse/internal/auth"
	"github.com/christopherjparrett/TheUniverse/internal/service"
	apperrors "github.com/christopherjparrett/TheUniverse/pkg/util"
)

// PlanetsHandler manages planet CRUD endpoints.
type PlanetsHandler struct {
	service *service.PlanetService
}

// NewPlanetsHandler constructs handler.
func NewPlanetsHandler(planetService *service.PlanetService) *PlanetsHandler {
	return &PlanetsHandler{service: planetService}
}

// ListPlanets GET /planets.
func (h *PlanetsHandler) ListPlanets(c *fiber.Ctx) error {
	planets, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.PlanetResponse, 0, len(planets))
	for i := range planets {
		items = append(items, dto.NewPlanetResponse(&planets[i]))
	}
	return c.JSON(items)
}

// GetPlanet GET /planets/:id.
func (h *PlanetsHandler) GetPlanet(c *fiber.Ctx) error {
	id, err := planetID(c)
	if err != nil {
		return err
	}
	planet, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPlanetResponse(planet))
}

// CreatePlanet POST /planets.
func (h *PlanetsHandler) CreatePlanet(c *fiber.Ctx) error {
	var req dto.CreatePlanetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := req.Validate(); details != nil {
		return apperrors.NewValidationError("invalid planet payload", details)
	}

	planet, err := h.service.Create(c.Context(), actorName(c), req.ToPlanet())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPlanetResponse(planet))
}

// UpdatePlanet PUT /planets/:id.
func (h *PlanetsHandler) UpdatePlanet(c *fiber.Ctx) error {
	id, err := planetID(c)
	if err != nil {
		return err
	}

	var req dto.UpdatePlanetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := req.Validate(); details != nil {
		return apperrors.NewValidationError("invalid planet payload", details)
	}

	planet, err := h.service.Patch(c.Context(), actorName(c), id, req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPlanetResponse(planet))
}

// DeletePlanet DELETE /planets/:id.
func (h *PlanetsHandler) DeletePlanet(c *fiber.Ctx) error {
	id, err := planetID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), actorName(c), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// planetID parses the path id. A non-numeric id behaves like an unknown one.
func planetID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewNotFound("Planet")
	}
	return id, nil
}

func actorName(c *fiber.Ctx) string {
	if user, ok := auth.UserFromContext(c); ok {
		return user.Username
	}
	return ""
}
