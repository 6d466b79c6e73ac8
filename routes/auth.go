package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/swasthiksuvarna/storefront-api/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.SignUp(deps.DB))
		authGroup.POST("/signin", auth.SignIn(deps.DB))
		authGroup.POST("/signout", auth.SignOut())
	}
}
