package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitboard/internal/domain"
	"fitboard/internal/infrastructure/repository"
)

// noExerciseSet is the display value for a day without an assignment.
const noExerciseSet = "No exercise set"

type ExerciseHandler struct {
	directory *repository.ExerciseDirectory
}

func NewExerciseHandler(directory *repository.ExerciseDirectory) *ExerciseHandler {
	return &ExerciseHandler{directory: directory}
}

func (h *ExerciseHandler) Get(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = domain.Today()
	}
	if err := domain.ValidateDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name, ok, err := h.directory.GetExercise(c, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		name = noExerciseSet
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     date,
		"exercise": name,
	})
}

type setExerciseReq struct {
	Date string `json:"date"`
	Name string `json:"name" binding:"required"`
}

func (h *ExerciseHandler) Set(c *gin.Context) {
	var req setExerciseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Date == "" {
		req.Date = domain.Today()
	}

	if err := h.directory.SetExercise(c, req.Date, req.Name); err != nil {
		status := http.StatusInternalServerError
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     req.Date,
		"exercise": req.Name,
	})
}
