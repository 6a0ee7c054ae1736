package server

import (
	"agora/internal/models"
	"agora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetThreads handles GET /api/threads
// @Summary List threads
// @Description List threads ordered by most recent activity, optionally scoped to a space
// @Tags threads
// @Produce json
// @Param spaceId query int false "Space ID"
// @Param limit query int false "Max threads to return (cap 50)"
// @Success 200 {array} models.Thread
// @Router /threads [get]
func (s *Server) GetThreads(c *fiber.Ctx) error {
	spaceID := c.QueryInt("spaceId", 0)
	if spaceID < 0 {
		spaceID = 0
	}

	threads, err := s.threadSvc().ListThreads(c.Context(), uint(spaceID), c.QueryInt("limit", 0))
	if err != nil {
		return respondServiceError(c, err)
	}
	if threads == nil {
		threads = []*models.Thread{}
	}
	return c.JSON(threads)
}

// GetThread handles GET /api/threads/:id
// @Summary Get a thread
// @Description Get a thread with its author and space
// @Tags threads
// @Produce json
// @Param id path int true "Thread ID"
// @Success 200 {object} models.Thread
// @Failure 404 {object} models.ErrorResponse
// @Router /threads/{id} [get]
func (s *Server) GetThread(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	thread, err := s.threadSvc().GetThread(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(thread)
}

// CreateThread handles POST /api/threads
// @Summary Create a thread
// @Description Start a new discussion thread in a space
// @Tags threads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{space_id=int,title=string,content=string} true "Thread"
// @Success 201 {object} models.Thread
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /threads [post]
func (s *Server) CreateThread(c *fiber.Ctx) error {
	var req struct {
		SpaceID uint   `json:"space_id"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.SpaceID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("space_id is required"))
	}

	thread, err := s.threadSvc().CreateThread(c.Context(), service.CreateThreadInput{
		UserID:  currentUserID(c),
		SpaceID: req.SpaceID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(thread)
}

// DeleteThread handles DELETE /api/threads/:id
// @Summary Delete a thread
// @Description Delete a thread and its replies (admin moderation)
// @Tags threads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Thread ID"
// @Success 200 {object} object{message=string}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /threads/{id} [delete]
func (s *Server) DeleteThread(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.threadSvc().DeleteThread(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Thread deleted"})
}

// GetThreadReplies handles GET /api/threads/:id/replies
// @Summary List thread replies
// @Description List a thread's replies oldest first
// @Tags threads
// @Produce json
// @Param id path int true "Thread ID"
// @Success 200 {array} models.ThreadReply
// @Router /threads/{id}/replies [get]
func (s *Server) GetThreadReplies(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	replies, err := s.threadSvc().ListReplies(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if replies == nil {
		replies = []*models.ThreadReply{}
	}
	return c.JSON(replies)
}

// CreateThreadReply handles POST /api/threads/:id/replies
// @Summary Reply to a thread
// @Description Append a reply; the thread's reply count and activity timestamp advance atomically
// @Tags threads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Thread ID"
// @Param request body object{content=string} true "Reply"
// @Success 201 {object} models.ThreadReply
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /threads/{id}/replies [post]
func (s *Server) CreateThreadReply(c *fiber.Ctx) error {
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

	reply, err := s.threadSvc().AppendReply(c.Context(), service.AppendReplyInput{
		UserID:   currentUserID(c),
		ThreadID: id,
		Content:  req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(reply)
}
