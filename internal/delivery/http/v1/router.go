package v1

import (
	"net/http"

	"ajans99-backend/config"
	"ajans99-backend/internal/delivery/http/middleware"
	"ajans99-backend/internal/delivery/http/response"
	"ajans99-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	MeetingUC domain.MeetingUsecase
	AccountUC domain.AccountUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares
	r.Use(middleware.CORSMiddleware(deps.Config))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational")
	})

	// Public routes
	NewMeetingHandler(api, deps.MeetingUC)

	// Session-aware routes
	session := api.Group("")
	session.Use(middleware.SessionAuth(deps.Config))
	{
		NewAccountHandler(session, deps.AccountUC)
	}

	return r
}
