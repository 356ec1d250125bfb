package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/arohezay/backend/internal/advisor"
	"github.com/arohezay/backend/internal/common"
	"github.com/arohezay/backend/internal/config"
	"github.com/arohezay/backend/internal/httpapi/handlers"
	"github.com/arohezay/backend/internal/httpapi/middleware"
	"github.com/arohezay/backend/internal/store/rabbitmq"
)

func NewRouter(cfg config.Config, svc *advisor.Service, jobs *advisor.Jobs, rabbit *rabbitmq.Publisher) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	// Frontends are served from arbitrary origins, so CORS stays wide open.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "X-Request-ID"},
	}))

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, 40400, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, 40500, "method not allowed")
	})

	h := handlers.NewHandler(cfg, svc, jobs, rabbit)

	r.GET("/ping", h.Ping)
	r.GET("/search", h.Search)
	r.GET("/areas", h.Areas)
	r.POST("/search/async", h.SearchAsync)
	r.GET("/search/jobs/:job_id", h.GetJob)

	return r
}
