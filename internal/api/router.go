package api

import (
	"github.com/gin-gonic/gin"

	"teamraw-backend/internal/auth"
	"teamraw-backend/internal/config"
	"teamraw-backend/internal/llm"
	"teamraw-backend/internal/store"
	"teamraw-backend/internal/ws"
)

// NewRouter assembles the full HTTP surface. cmd/server wires real
// dependencies; tests pass their own.
func NewRouter(cfg *config.Config, st *store.Store, authSvc *auth.Service, hub *ws.Hub, llmClient *llm.Client) *gin.Engine {
	r := gin.Default()

	r.Use(CORSMiddleware(cfg.AllowedOrigin))
	r.Use(SessionGuard(authSvc))

	contactHandler := NewContactHandler(st, hub)
	adminHandler := NewAdminHandler(authSvc)
	dashboardHandler := NewDashboardHandler(st, hub)
	chatHandler := NewChatHandler(llmClient)

	r.GET("/health", dashboardHandler.Health)

	// Public contact API, consumed by the site's contact form and polled by
	// the admin panel.
	r.POST("/contact-messages", contactHandler.CreateMessage)
	r.GET("/contact-messages", contactHandler.ListMessages)
	r.GET("/contact-messages/:id", contactHandler.GetMessage)
	r.PATCH("/contact-messages/:id", contactHandler.UpdateMessage)
	r.DELETE("/contact-messages/:id", contactHandler.DeleteMessage)

	// Chatbot proxy.
	r.POST("/chat", chatHandler.Chat)

	// Admin session endpoints.
	adminGroup := r.Group("/admin")
	{
		adminGroup.POST("/login", adminHandler.Login)
		adminGroup.POST("/logout", adminHandler.Logout)
		adminGroup.GET("/verify", adminHandler.Verify)

		protected := adminGroup.Group("", RequireAdmin(authSvc))
		{
			protected.GET("/analytics", dashboardHandler.Analytics)
			protected.GET("/ws", dashboardHandler.Feed)
		}
	}

	return r
}
