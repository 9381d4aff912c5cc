package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"persona-matcher/internal/domain"
	"persona-matcher/internal/service"
)

// QuizHandler exposes the adaptive quiz.
type QuizHandler struct {
	logger *zap.Logger
	quiz   *service.QuizService
}

func NewQuizHandler(logger *zap.Logger, quiz *service.QuizService) *QuizHandler {
	return &QuizHandler{
		logger: logger,
		quiz:   quiz,
	}
}

// StartSession maneja POST /quiz/session.
func (h *QuizHandler) StartSession(c *gin.Context) {
	var req struct {
		ProductType string `json:"product_type"`
	}
	// Body is optional: a bare POST starts an unfiltered quiz.
	_ = c.ShouldBindJSON(&req)

	session, question, err := h.quiz.Start(c.Request.Context(), req.ProductType)
	if err != nil {
		h.logger.Error("start quiz failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start quiz"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": session.ID,
		"question":   question,
	})
}

// Answer maneja POST /quiz/answer.
func (h *QuizHandler) Answer(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
		Trait     string `json:"trait" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid quiz answer request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	question, err := h.quiz.Answer(c.Request.Context(), req.SessionID, req.Trait)
	if err != nil {
		h.respondQuizError(c, err)
		return
	}

	if question == nil {
		c.JSON(http.StatusOK, gin.H{"completed": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"completed": false, "question": question})
}

// Result maneja POST /quiz/result.
func (h *QuizHandler) Result(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid quiz result request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.quiz.Result(c.Request.Context(), req.SessionID)
	if err != nil {
		h.respondQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (h *QuizHandler) respondQuizError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidSession):
		c.JSON(http.StatusNotFound, gin.H{"error": "invalid session id"})
	case errors.Is(err, domain.ErrSessionExpired):
		c.JSON(http.StatusGone, gin.H{"error": "session expired"})
	case errors.Is(err, domain.ErrNoAnswers):
		c.JSON(http.StatusConflict, gin.H{"error": "no answers recorded"})
	default:
		h.logger.Error("quiz operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "quiz operation failed"})
	}
}
