package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harutok/practiceshare/internal/app/controllers"
	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/middleware"
)

// RateLimits groups the per-scope request budgets applied under /api.
type RateLimits struct {
	Limiter     *middleware.RateLimiter
	APILimit    int
	AuthLimit   int
	UploadLimit int
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	practiceController *controllers.PracticeController,
	commentController *controllers.CommentController,
	ratingController *controllers.RatingController,
	contactController *controllers.ContactController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	limits RateLimits,
) {
	api := router.Group("/api")
	api.Use(limits.Limiter.Limit("api", limits.APILimit))

	// Liveness probe
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessMessage("ok"))
	})

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		// Credential endpoints carry a much tighter budget than the rest of
		// the API.
		auth.POST("/register", limits.Limiter.Limit("auth", limits.AuthLimit), authController.Register)
		auth.POST("/login", limits.Limiter.Limit("auth", limits.AuthLimit), authController.Login)

		auth.GET("/me", authMiddleware.JWTAuth(), authController.GetMe)
		auth.PUT("/profile", authMiddleware.JWTAuth(), authController.UpdateProfile)
	}

	// --- Practice routes ---
	practices := api.Group("/practices")
	{
		practices.GET("", practiceController.List)
		// Optional auth so owners can read their drafts.
		practices.GET("/:id", authMiddleware.OptionalJWTAuth(), practiceController.Get)

		practices.POST("", authMiddleware.JWTAuth(), practiceController.Create)
		practices.PUT("/:id", authMiddleware.JWTAuth(), practiceController.Update)
		practices.DELETE("/:id", authMiddleware.JWTAuth(), practiceController.Delete)
	}

	// --- Comment routes ---
	comments := api.Group("/comments")
	{
		comments.POST("", commentController.Create)
		comments.GET("/practice/:practiceId", commentController.ListByPractice)
		comments.DELETE("/:id", authMiddleware.JWTAuth(), commentController.Delete)
	}

	// --- Rating routes ---
	ratings := api.Group("/ratings")
	{
		ratings.POST("", ratingController.Create)
		ratings.GET("/practice/:practiceId/stats", ratingController.Stats)
		ratings.GET("/practice/:practiceId/user", ratingController.UserRating)
	}

	// --- Contact routes ---
	contacts := api.Group("/contacts")
	{
		contacts.POST("", contactController.Create)
		contacts.GET("", authMiddleware.JWTAuth(), contactController.List)
		contacts.GET("/:id", authMiddleware.JWTAuth(), contactController.Get)
		contacts.PUT("/:id/status", authMiddleware.JWTAuth(), contactController.UpdateStatus)
	}

	// --- Media routes ---
	api.GET("/media/practice/:practiceId", uploadController.ListByPractice)

	admin := api.Group("/admin")
	admin.Use(authMiddleware.JWTAuth())
	{
		admin.POST("/upload", limits.Limiter.Limit("upload", limits.UploadLimit), uploadController.Upload)
		admin.DELETE("/media/:id", uploadController.Delete)
	}
}
