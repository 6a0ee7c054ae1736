package server

import (
	"agora/internal/models"
	"agora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetSpaces handles GET /api/spaces
// @Summary List spaces
// @Description List all spaces in display order with channel and thread counts
// @Tags spaces
// @Produce json
// @Success 200 {array} models.Space
// @Router /spaces [get]
func (s *Server) GetSpaces(c *fiber.Ctx) error {
	spaces, err := s.spaceSvc().ListSpaces(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	if spaces == nil {
		spaces = []*models.Space{}
	}
	return c.JSON(spaces)
}

// GetSpaceBySlug handles GET /api/spaces/:slug
// @Summary Get a space
// @Description Get a space by slug with its channels
// @Tags spaces
// @Produce json
// @Param slug path string true "Space slug"
// @Success 200 {object} models.Space
// @Failure 404 {object} models.ErrorResponse
// @Router /spaces/{slug} [get]
func (s *Server) GetSpaceBySlug(c *fiber.Ctx) error {
	space, err := s.spaceSvc().GetSpaceBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(space)
}

// CreateSpace handles POST /api/spaces
// @Summary Create a space
// @Description Create a new space (admin only)
// @Tags spaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{name=string,description=string,icon=string,sort_order=int} true "Space"
// @Success 201 {object} models.Space
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /spaces [post]
func (s *Server) CreateSpace(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		SortOrder   int    `json:"sort_order"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	space, err := s.spaceSvc().CreateSpace(c.Context(), service.CreateSpaceInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(space)
}

// UpdateSpace handles PUT /api/spaces/:id
// @Summary Update a space
// @Description Update a space's name, description, icon, or sort order (admin only). The slug never changes.
// @Tags spaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Space ID"
// @Param request body object{name=string,description=string,icon=string,sort_order=int} true "Space"
// @Success 200 {object} models.Space
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /spaces/{id} [put]
func (s *Server) UpdateSpace(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		SortOrder   int    `json:"sort_order"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	space, err := s.spaceSvc().UpdateSpace(c.Context(), service.UpdateSpaceInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(space)
}

// DeleteSpace handles DELETE /api/spaces/:id
// @Summary Delete a space
// @Description Delete a space and everything in it (admin only)
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Param id path int true "Space ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /spaces/{id} [delete]
func (s *Server) DeleteSpace(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.spaceSvc().DeleteSpace(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Space deleted"})
}
