package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitboard/internal/application/usecase"
	"fitboard/internal/domain"
	"fitboard/internal/middleware"
)

type ScoreHandler struct {
	submit *usecase.SubmitUseCase
}

func NewScoreHandler(submit *usecase.SubmitUseCase) *ScoreHandler {
	return &ScoreHandler{submit: submit}
}

type submitScoreReq struct {
	Date  string `json:"date"`
	Score *int   `json:"score" binding:"required"`
}

func (h *ScoreHandler) Submit(c *gin.Context) {
	var req submitScoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Date == "" {
		req.Date = domain.Today()
	}

	participant := c.GetString(middleware.ContextParticipant)
	name := c.GetString(middleware.ContextDisplayName)

	if err := h.submit.SubmitScore(c, participant, name, req.Date, *req.Score); err != nil {
		status := http.StatusInternalServerError
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"participant": participant,
		"date":        req.Date,
		"score":       *req.Score,
	})
}
