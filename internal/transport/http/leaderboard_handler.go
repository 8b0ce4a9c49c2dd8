package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitboard/internal/application/usecase"
	"fitboard/internal/domain"
)

type LeaderboardHandler struct {
	leaderboard *usecase.LeaderboardUseCase
}

func NewLeaderboardHandler(leaderboard *usecase.LeaderboardUseCase) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

func (h *LeaderboardHandler) Get(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = domain.Today()
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		l, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = l
	}

	entries, err := h.leaderboard.DailyLeaderboard(c, date, limit)
	if err != nil {
		status := http.StatusInternalServerError
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":        date,
		"leaderboard": entries,
	})
}
