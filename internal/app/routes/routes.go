package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bkalungi/shulebase/internal/app/controllers"
	"github.com/bkalungi/shulebase/internal/app/models"
	"github.com/bkalungi/shulebase/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	schoolController *controllers.SchoolController,
	staffController *controllers.StaffController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// School routes (read for any authenticated caller, write for admins)
		schools := authenticated.Group("/schools")
		{
			schools.GET("/:id", schoolController.GetSchool)

			schoolsAdminProtected := schools.Group("")
			schoolsAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				schoolsAdminProtected.POST("", schoolController.CreateSchool)
			}
		}

		// Staff provisioning routes, restricted to administrative roles
		staff := authenticated.Group("/staff")
		staff.Use(authMiddleware.RoleRequiredAny(string(models.RoleAdmin), string(models.RoleAcademic)))
		{
			staff.POST("/provision", staffController.ProvisionTeacher)
			staff.POST("/accounts", staffController.CreateStaffAccount)
		}
	}
}
