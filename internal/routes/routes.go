package routes

import (
	"net/http"

	"joonbee_backend/internal/handlers"
	"joonbee_backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// APIHandlers bundles the content API handler set for registration.
type APIHandlers struct {
	Category  *handlers.CategoryHandler
	Question  *handlers.QuestionHandler
	Interview *handlers.InterviewHandler
	Member    *handlers.MemberHandler
	Cart      *handlers.CartHandler
}

// RegisterAPIRoutes mounts the content API under /api plus the operational
// endpoints.
func RegisterAPIRoutes(r *gin.Engine, h *APIHandlers, gatherer prometheus.Gatherer) {
	api := r.Group("/api")
	{
		h.Category.RegisterRoutes(api)
		h.Question.RegisterRoutes(api)
		h.Interview.RegisterRoutes(api)
		h.Member.RegisterRoutes(api)
		h.Cart.RegisterRoutes(api)
	}

	registerOps(r, gatherer)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// RegisterAuthRoutes mounts the identity server surface at the root.
func RegisterAuthRoutes(r *gin.Engine, auth *handlers.AuthHandler, gatherer prometheus.Gatherer) {
	auth.RegisterRoutes(r.Group(""))
	registerOps(r, gatherer)
}

func registerOps(r *gin.Engine, gatherer prometheus.Gatherer) {
	r.GET("/metrics", gin.WrapH(metrics.Handler(gatherer)))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
