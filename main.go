package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"craftlink/config"
	"craftlink/cron"
	"craftlink/database"
	connectionRepoPkg "craftlink/database/repository/connection"
	messageRepoPkg "craftlink/database/repository/message"
	postRepoPkg "craftlink/database/repository/post"
	scheduleRepoPkg "craftlink/database/repository/schedule"
	userRepoPkg "craftlink/database/repository/user"
	"craftlink/handlers"
	"craftlink/middleware"
	"craftlink/routes"
	"craftlink/services/connection"
	"craftlink/services/discovery"
	"craftlink/services/feed"
	"craftlink/services/messaging"
	"craftlink/services/reminder"
	"craftlink/services/scheduling"
	"craftlink/services/user"
	"craftlink/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	postRepo := postRepoPkg.NewMongoPostRepo()
	connectionRepo := connectionRepoPkg.NewMongoConnectionRepo()
	messageRepo := messageRepoPkg.NewMongoMessageRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	reminderScheduler := reminder.NewScheduler()
	defer reminderScheduler.Close()

	scheduleService := &scheduling.DefaultScheduleService{
		Repo:      scheduleRepo,
		Reminders: reminderScheduler,
	}

	feedService := &feed.DefaultFeedService{
		Posts:       postRepo,
		Connections: connectionRepo,
		Cache:       feed.NewRedisFeedCache(utils.GetCacheClient(), 5*time.Minute),
	}

	connectionService := &connection.DefaultConnectionService{
		Repo: connectionRepo,
	}

	messagingService := &messaging.DefaultMessagingService{
		Repo: messageRepo,
	}

	discoveryService := &discovery.DefaultDiscoveryService{
		Users:         userRepo,
		Connections:   connectionRepo,
		ConnectionSvc: connectionService,
		Sessions:      discovery.NewRedisDeckStore(utils.GetCacheClient()),
	}

	// handlers.
	userHandler := handlers.NewUserHandler(userService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	feedHandler := handlers.NewFeedHandler(feedService)
	connectionHandler := handlers.NewConnectionHandler(connectionService)
	messageHandler := handlers.NewMessageHandler(messagingService)
	discoveryHandler := handlers.NewDiscoveryHandler(discoveryService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// User endpoints.
		RegisterHandler:       userHandler.RegisterHandler,
		AuthenticateHandler:   userHandler.AuthenticateHandler,
		GetUserByIDHandler:    userHandler.GetUserByIDHandler,
		GetUserByEmailHandler: userHandler.GetUserByEmailHandler,
		UpdateProfileHandler:  userHandler.UpdateProfileHandler,
		DeleteUserHandler:     userHandler.DeleteUserHandler,
		RevokeTokenHandler:    userHandler.RevokeTokenHandler,

		// Scheduling endpoints.
		SetAvailabilityHandler:    scheduleHandler.SetAvailabilityHandler,
		GetAvailabilityHandler:    scheduleHandler.GetAvailabilityHandler,
		AvailableSlotsHandler:     scheduleHandler.AvailableSlotsHandler,
		ProposeMeetingHandler:     scheduleHandler.ProposeMeetingHandler,
		DirectBookHandler:         scheduleHandler.DirectBookHandler,
		ListRequestsHandler:       scheduleHandler.ListRequestsHandler,
		AcceptRequestHandler:      scheduleHandler.AcceptRequestHandler,
		DeclineRequestHandler:     scheduleHandler.DeclineRequestHandler,
		UpdateRequestNotesHandler: scheduleHandler.UpdateRequestNotesHandler,
		UpdateSlotNotesHandler:    scheduleHandler.UpdateSlotNotesHandler,

		// Feed endpoints.
		CreatePostHandler: feedHandler.CreatePostHandler,
		DeletePostHandler: feedHandler.DeletePostHandler,
		CommentHandler:    feedHandler.CommentHandler,
		LikeHandler:       feedHandler.LikeHandler,
		UnlikeHandler:     feedHandler.UnlikeHandler,
		HomeFeedHandler:   feedHandler.HomeFeedHandler,
		UserPostsHandler:  feedHandler.UserPostsHandler,

		// Connection endpoints.
		RequestConnectionHandler: connectionHandler.RequestConnectionHandler,
		AcceptConnectionHandler:  connectionHandler.AcceptConnectionHandler,
		ListConnectionsHandler:   connectionHandler.ListConnectionsHandler,
		NetworkHandler:           connectionHandler.NetworkHandler,

		// Messaging endpoints.
		SendMessageHandler:         messageHandler.SendMessageHandler,
		ListConversationsHandler:   messageHandler.ListConversationsHandler,
		ConversationHistoryHandler: messageHandler.ConversationHistoryHandler,

		// Discovery endpoints.
		StartSessionHandler: discoveryHandler.StartSessionHandler,
		SwipeHandler:        discoveryHandler.SwipeHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health monitor.
	go cron.InitReminderWorker()
	utils.StartHealthMonitor(database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
