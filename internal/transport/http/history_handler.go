package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitboard/internal/application/usecase"
	"fitboard/internal/middleware"
)

type HistoryHandler struct {
	history *usecase.HistoryUseCase
}

func NewHistoryHandler(history *usecase.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{history: history}
}

func (h *HistoryHandler) Get(c *gin.Context) {
	participant := c.GetString(middleware.ContextParticipant)

	entries, err := h.history.ParticipantTimeline(c, participant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": entries})
}
