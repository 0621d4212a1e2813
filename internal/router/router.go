package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Theijiii/plms-sys-sub005/internal/config"
	"github.com/Theijiii/plms-sys-sub005/internal/domain"
	"github.com/Theijiii/plms-sys-sub005/internal/handler"
	"github.com/Theijiii/plms-sys-sub005/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	verificationH *handler.VerificationHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Live)
	r.GET("/readyz", healthH.Ready)

	v1 := r.Group("/api/v1")

	// All verification routes require a valid portal-issued token
	verifications := v1.Group("/verifications")
	verifications.Use(middleware.AuthMiddleware(&cfg.JWT))
	verifications.POST("", verificationH.Submit)
	verifications.GET("", verificationH.ListMine)

	// Staff-only review routes; registered before "/:id" so the literal
	// segments win.
	verifications.GET("/all", middleware.RequireRole(domain.RoleStaff), verificationH.ListAll)
	verifications.GET("/export", middleware.RequireRole(domain.RoleStaff), verificationH.ExportCSV)

	verifications.GET("/:id", verificationH.Get)

	return r
}
