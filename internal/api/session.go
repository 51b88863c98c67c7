package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/smoothie-orders/backend/internal/types"
	"github.com/pageza/smoothie-orders/backend/internal/workflow"
)

type SessionHandler struct {
	svc    Services
	store  workflow.Store
	logger *zap.Logger
}

func NewSessionHandler(svc Services) *SessionHandler {
	return &SessionHandler{
		svc:    svc,
		store:  svc.Sessions,
		logger: svc.Logger.Named("sessions"),
	}
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.PUT("/:id/name", h.SetName)
		sessions.PUT("/:id/ingredients", h.SetIngredients)
		sessions.POST("/:id/ingredients", h.AddIngredient)
		sessions.DELETE("/:id/ingredients/:name", h.RemoveIngredient)
		sessions.POST("/:id/submit", append(h.svc.submitGuard(), h.Submit)...)
		sessions.DELETE("/:id", h.CloseSession)
	}
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	s := workflow.NewSession(c.Request.Context(), h.svc.workflowDeps())
	if !h.save(c, s) {
		return
	}
	c.JSON(http.StatusCreated, types.SessionResponse{Session: s.View()})
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	s, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, types.SessionResponse{Session: s.View()})
}

func (h *SessionHandler) SetName(c *gin.Context) {
	var req types.SetNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, ok := h.load(c)
	if !ok {
		return
	}
	if err := s.SetName(req.NameOnOrder); err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, s)
}

func (h *SessionHandler) SetIngredients(c *gin.Context) {
	var req types.SetIngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, ok := h.load(c)
	if !ok {
		return
	}
	if err := s.SetIngredients(c.Request.Context(), req.Ingredients); err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, s)
}

func (h *SessionHandler) AddIngredient(c *gin.Context) {
	var req types.AddIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, ok := h.load(c)
	if !ok {
		return
	}
	if err := s.AddIngredient(c.Request.Context(), req.Ingredient); err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, s)
}

func (h *SessionHandler) RemoveIngredient(c *gin.Context) {
	s, ok := h.load(c)
	if !ok {
		return
	}
	if err := s.RemoveIngredient(c.Request.Context(), c.Param("name")); err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, s)
}

func (h *SessionHandler) Submit(c *gin.Context) {
	s, ok := h.load(c)
	if !ok {
		return
	}
	order, err := s.Submit(c.Request.Context())
	if errors.Is(err, workflow.ErrNothingToSubmit) || errors.Is(err, workflow.ErrClosed) {
		h.fail(c, err)
		return
	}
	// A failed write is still a state change: the view carries the message.
	if !h.save(c, s) {
		return
	}
	view := s.View()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": view.Status, "session": view})
		return
	}
	c.JSON(http.StatusCreated, types.OrderResponse{
		Message: workflow.MessageOrdered,
		Order:   order,
		Session: &view,
	})
}

func (h *SessionHandler) CloseSession(c *gin.Context) {
	s, ok := h.load(c)
	if !ok {
		return
	}
	_ = s.Close()
	if err := h.store.Delete(c.Request.Context(), s.ID()); err != nil && !errors.Is(err, workflow.ErrSessionNotFound) {
		h.logger.Error("failed to delete session", zap.String("session_id", s.ID()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close session"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) load(c *gin.Context) (*workflow.Session, bool) {
	state, err := h.store.Load(c.Request.Context(), c.Param("id"))
	if errors.Is(err, workflow.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return nil, false
	}
	if err != nil {
		h.logger.Error("failed to load session", zap.String("session_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return nil, false
	}
	return workflow.Restore(state, h.svc.workflowDeps()), true
}

func (h *SessionHandler) save(c *gin.Context, s *workflow.Session) bool {
	if err := h.store.Save(c.Request.Context(), s.Snapshot()); err != nil {
		h.logger.Error("failed to save session", zap.String("session_id", s.ID()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return false
	}
	return true
}

func (h *SessionHandler) respond(c *gin.Context, s *workflow.Session) {
	if !h.save(c, s) {
		return
	}
	c.JSON(http.StatusOK, types.SessionResponse{Session: s.View()})
}

func (h *SessionHandler) fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, workflow.ErrSelectionLimit),
		errors.Is(err, workflow.ErrNothingToSubmit),
		errors.Is(err, workflow.ErrClosed):
		return http.StatusConflict
	case errors.Is(err, workflow.ErrUnknownIngredient):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
