package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/swasthiksuvarna/storefront-api/notify"
	"github.com/swasthiksuvarna/storefront-api/store"
	"gorm.io/gorm"
)

// Deps carries the shared collaborators the route handlers close over.
type Deps struct {
	DB *gorm.DB

	// TaskStore is durable, CartStore is session-scoped; both satisfy the
	// same contract so either can be swapped for the other.
	TaskStore store.Store
	CartStore store.Store

	Notifier notify.Notifier
	Hub      *notify.Hub
}

// SetupRoutes is the single entry-point that wires up Auth, User, Admin and
// websocket route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// 2️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// 3️⃣ Admin routes (API-Key-protected)
	SetupAdminRoutes(r, deps)

	// Toast notification stream
	if deps.Hub != nil {
		r.GET("/ws/notifications", deps.Hub.Handler)
	}
}
