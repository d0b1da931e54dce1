package v1

import (
	"contact-relay/config"
	"contact-relay/internal/delivery/http/middleware"
	"contact-relay/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterDeps holds everything the HTTP routes need
type RouterDeps struct {
	ContactUC domain.ContactUsecase
	Config    *config.Config
}

// NewRouter builds the gin engine with global middleware and all routes
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// A nil config allows every origin
	var allowedOrigins []string
	if deps.Config != nil {
		allowedOrigins = deps.Config.CORSAllowedOrigins
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(allowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	NewHealthHandler(r)
	NewContactHandler(r, deps.ContactUC)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
