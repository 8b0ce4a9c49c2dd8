package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fitboard/internal/infrastructure/security"
	"fitboard/internal/middleware"
)

type RouterDeps struct {
	Scores      *ScoreHandler
	Leaderboard *LeaderboardHandler
	History     *HistoryHandler
	Exercises   *ExerciseHandler
	Tokens      *security.TokenManager
	Limiter     *middleware.RateLimiter
	Admins      map[string]struct{}
	Logger      zerolog.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog(deps.Logger))

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	r.Use(cors.New(config))

	auth := middleware.Auth(deps.Tokens)

	api := r.Group("/api/v1")
	{
		api.GET("/leaderboard", deps.Leaderboard.Get)
		api.GET("/exercise", deps.Exercises.Get)

		api.POST("/scores", auth, deps.Limiter.Limit("submit", 30, time.Minute), deps.Scores.Submit)
		api.GET("/history", auth, deps.History.Get)

		api.PUT("/exercise", auth, middleware.AdminOnly(deps.Admins), deps.Exercises.Set)
	}

	return r
}
