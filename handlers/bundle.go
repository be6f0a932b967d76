package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler so route registration stays
// in one place.
type HandlerBundle struct {
	// User endpoints.
	RegisterHandler       gin.HandlerFunc
	AuthenticateHandler   gin.HandlerFunc
	GetUserByIDHandler    gin.HandlerFunc
	GetUserByEmailHandler gin.HandlerFunc
	UpdateProfileHandler  gin.HandlerFunc
	DeleteUserHandler     gin.HandlerFunc
	RevokeTokenHandler    gin.HandlerFunc

	// Scheduling endpoints.
	SetAvailabilityHandler    gin.HandlerFunc
	GetAvailabilityHandler    gin.HandlerFunc
	AvailableSlotsHandler     gin.HandlerFunc
	ProposeMeetingHandler     gin.HandlerFunc
	DirectBookHandler         gin.HandlerFunc
	ListRequestsHandler       gin.HandlerFunc
	AcceptRequestHandler      gin.HandlerFunc
	DeclineRequestHandler     gin.HandlerFunc
	UpdateRequestNotesHandler gin.HandlerFunc
	UpdateSlotNotesHandler    gin.HandlerFunc

	// Feed endpoints.
	CreatePostHandler gin.HandlerFunc
	DeletePostHandler gin.HandlerFunc
	CommentHandler    gin.HandlerFunc
	LikeHandler       gin.HandlerFunc
	UnlikeHandler     gin.HandlerFunc
	HomeFeedHandler   gin.HandlerFunc
	UserPostsHandler  gin.HandlerFunc

	// Connection endpoints.
	RequestConnectionHandler gin.HandlerFunc
	AcceptConnectionHandler  gin.HandlerFunc
	ListConnectionsHandler   gin.HandlerFunc
	NetworkHandler           gin.HandlerFunc

	// Messaging endpoints.
	SendMessageHandler         gin.HandlerFunc
	ListConversationsHandler   gin.HandlerFunc
	ConversationHistoryHandler gin.HandlerFunc

	// Discovery endpoints.
	StartSessionHandler gin.HandlerFunc
	SwipeHandler        gin.HandlerFunc
}
