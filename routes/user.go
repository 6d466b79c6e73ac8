package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/swasthiksuvarna/storefront-api/controllers/cart"
	productControllers "github.com/swasthiksuvarna/storefront-api/controllers/product"
	taskControllers "github.com/swasthiksuvarna/storefront-api/controllers/task"
	userControllers "github.com/swasthiksuvarna/storefront-api/controllers/user"
	"github.com/swasthiksuvarna/storefront-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(deps.DB))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(deps.DB)) // PUT /user/

		// ──────────────── To-do List ────────────────
		taskGroup := userGroup.Group("/tasks")
		{
			taskGroup.GET("/", taskControllers.GetTasks(deps.TaskStore, deps.Notifier))
			taskGroup.POST("/", taskControllers.CreateTask(deps.TaskStore, deps.Notifier))
			taskGroup.PUT("/:id", taskControllers.UpdateTask(deps.TaskStore, deps.Notifier))
			taskGroup.PATCH("/:id/toggle", taskControllers.ToggleTask(deps.TaskStore, deps.Notifier))
			taskGroup.DELETE("/:id", taskControllers.DeleteTask(deps.TaskStore, deps.Notifier))
		}

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(deps.CartStore, deps.Notifier))
			cartGroup.GET("/summary", cartControllers.GetCartSummary(deps.CartStore, deps.Notifier))
			cartGroup.POST("/", cartControllers.AddCartItem(deps.DB, deps.CartStore, deps.Notifier))
			cartGroup.POST("/:product_id/increase", cartControllers.IncreaseCartItem(deps.CartStore, deps.Notifier))
			cartGroup.POST("/:product_id/decrease", cartControllers.DecreaseCartItem(deps.CartStore, deps.Notifier))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.CartStore, deps.Notifier))
			cartGroup.DELETE("/", cartControllers.ClearCart(deps.CartStore, deps.Notifier))
		}

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productControllers.GetProducts(deps.DB))        // GET /user/products
		userGroup.GET("/products/:id", productControllers.GetProductByID(deps.DB)) // GET /user/products/:id

		// ──────────────── Browse Categories ────────────────
		userGroup.GET("/categories", productControllers.GetAllCategories(deps.DB)) // GET /user/categories
	}
}
