package server

import (
	"agora/internal/models"
	"agora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateChannel handles POST /api/channels
// @Summary Create a channel
// @Description Create a new channel in a space (admin only)
// @Tags channels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{space_id=int,name=string,description=string} true "Channel"
// @Success 201 {object} models.Channel
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /channels [post]
func (s *Server) CreateChannel(c *fiber.Ctx) error {
	var req struct {
		SpaceID     uint   `json:"space_id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.SpaceID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("space_id is required"))
	}

	channel, err := s.channelSvc().CreateChannel(c.Context(), service.CreateChannelInput{
		SpaceID:     req.SpaceID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(channel)
}

// DeleteChannel handles DELETE /api/channels/:id
// @Summary Delete a channel
// @Description Delete a channel and its message log (admin only)
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Channel ID"
// @Success 200 {object} object{message=string}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /channels/{id} [delete]
func (s *Server) DeleteChannel(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.channelSvc().DeleteChannel(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Channel deleted"})
}

// GetChannelMessages handles GET /api/channels/:id/messages
// @Summary List channel messages
// @Description List a channel's messages oldest first
// @Tags channels
// @Produce json
// @Param id path int true "Channel ID"
// @Param limit query int false "Max messages to return"
// @Success 200 {array} models.ChannelMessage
// @Failure 404 {object} models.ErrorResponse
// @Router /channels/{id}/messages [get]
func (s *Server) GetChannelMessages(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	messages, err := s.channelSvc().ListMessages(c.Context(), id, c.QueryInt("limit", 0))
	if err != nil {
		return respondServiceError(c, err)
	}
	if messages == nil {
		messages = []*models.ChannelMessage{}
	}
	return c.JSON(messages)
}

// PostChannelMessage handles POST /api/channels/:id/messages
// @Summary Post a channel message
// @Description Append a message to a channel's log
// @Tags channels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Channel ID"
// @Param request body object{content=string} true "Message"
// @Success 201 {object} models.ChannelMessage
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /channels/{id}/messages [post]
func (s *Server) PostChannelMessage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, err := s.channelSvc().PostMessage(c.Context(), service.PostMessageInput{
		ChannelID: id,
		UserID:    currentUserID(c),
		Content:   req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}
