package routes

import (
	"net/http"
	"time"

	"craftlink/handlers"
	"craftlink/middleware"
	"craftlink/models"
	"craftlink/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.AuthenticateHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/id/:id", hb.GetUserByIDHandler)
		api.GET("/email/:email", hb.GetUserByEmailHandler)
		api.PATCH("/me", hb.UpdateProfileHandler)
		api.DELETE("/me", hb.DeleteUserHandler)
		api.DELETE("/revoke", hb.RevokeTokenHandler)
	}
}

// RegisterScheduleRoutes registers availability and meeting endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	api.Use(middleware.JWTAuthMiddleware())
	{
		// Contractor-side schedule management.
		contractor := api.Group("")
		contractor.Use(middleware.RequireRole(models.RoleContractor))
		contractor.PUT("/availability", hb.SetAvailabilityHandler)
		contractor.GET("/availability", hb.GetAvailabilityHandler)
		contractor.GET("/requests", hb.ListRequestsHandler)
		contractor.POST("/requests/:requestID/accept", hb.AcceptRequestHandler)
		contractor.POST("/requests/:requestID/decline", hb.DeclineRequestHandler)
		contractor.PUT("/requests/:requestID/notes", hb.UpdateRequestNotesHandler)
		contractor.PUT("/slots/notes", hb.UpdateSlotNotesHandler)

		// Realtor-side booking flow.
		api.GET("/:contractorID/slots", hb.AvailableSlotsHandler)
		api.POST("/:contractorID/propose", hb.ProposeMeetingHandler)
		api.POST("/:contractorID/book", hb.DirectBookHandler)
	}
}

// RegisterFeedRoutes registers the social feed endpoints.
func RegisterFeedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feed")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("", hb.HomeFeedHandler)
		api.POST("/posts", hb.CreatePostHandler)
		api.DELETE("/posts/:postID", hb.DeletePostHandler)
		api.POST("/posts/:postID/comments", hb.CommentHandler)
		api.PUT("/posts/:postID/like", hb.LikeHandler)
		api.DELETE("/posts/:postID/like", hb.UnlikeHandler)
		api.GET("/users/:userID/posts", hb.UserPostsHandler)
	}
}

// RegisterConnectionRoutes registers networking endpoints.
func RegisterConnectionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/connections")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("", hb.ListConnectionsHandler)
		api.GET("/network", hb.NetworkHandler)
		api.POST("/request/:targetID", hb.RequestConnectionHandler)
		api.POST("/accept/:connectionID", hb.AcceptConnectionHandler)
	}
}

// RegisterMessageRoutes registers direct-messaging endpoints.
func RegisterMessageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/messages")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("", hb.ListConversationsHandler)
		api.GET("/:recipientID", hb.ConversationHistoryHandler)
		api.POST("/:recipientID", hb.SendMessageHandler)
	}
}

// RegisterDiscoveryRoutes registers the swipe-deck endpoints for realtors.
func RegisterDiscoveryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/discovery")
	api.Use(middleware.JWTAuthMiddleware())
	api.Use(middleware.RequireRole(models.RoleRealtor))
	{
		api.POST("/session", hb.StartSessionHandler)
		api.POST("/session/:sessionID/swipe", hb.SwipeHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterFeedRoutes(r, hb)
	RegisterConnectionRoutes(r, hb)
	RegisterMessageRoutes(r, hb)
	RegisterDiscoveryRoutes(r, hb)
	RegisterHealthRoute(r)
}
