package cartControllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/swasthiksuvarna/storefront-api/cartstate"
	"github.com/swasthiksuvarna/storefront-api/models"
	"github.com/swasthiksuvarna/storefront-api/notify"
	"github.com/swasthiksuvarna/storefront-api/store"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

func slotName(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

func controllerFor(c *gin.Context, st store.Store, n notify.Notifier) (*cartstate.Controller, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	userID, _ := userIDVal.(string)

	ctl, err := cartstate.NewController(st, slotName(userID), n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return nil, false
	}
	return ctl, true
}

func productIDParam(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
		return 0, false
	}
	return uint(id64), true
}

// GET /user/cart
func GetCart(st store.Store, n notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctl, ok := controllerFor(c, st, n)
		if !ok {
			return
		}
		items := ctl.Items()
		if items == nil {
			items = []models.CartLine{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /user/cart
func AddCartItem(db *gorm.DB, st store.Store, n notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctl, ok := controllerFor(c, st, n)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Fetch product from DB
		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		line := models.CartLine{
			ProductID: product.ID,
			Title:     product.Title,
			Price:     product.Price,
			Image:     product.Image,
			Size:      input.Size,
			Color:     input.Color,
			Quantity:  input.Quantity,
		}
		if err := ctl.Add(line); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, ctl.Items())
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(st store.Store, n notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctl, ok := controllerFor(c, st, n)
		if !ok {
			return
		}
		productID, ok := productIDParam(c)
		if !ok {
			return
		}

		if err := ctl.Remove(productID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// POST /user/cart/:product_id/increase
func IncreaseCartItem(st store.Store, n notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctl, ok := controllerFor(c, st, n)
		if !ok {
			return
		}
		productID, ok := productIDParam(c)
		if !ok {
			return
		}

		if err := ctl.Increase(productID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, ctl.Items())
	}
}

// POST /user/cart/:product_id/decrease
func DecreaseCartItem(st store.Store, n notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctl, ok := controllerFor(c, st, n)
		if !ok {
			return
		}
		productID, ok := productIDParam(c)
		if !ok {
			return
		}

		if err := ctl.Decrease(productID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, ctl.Items())
	}
}

// DELETE /user/cart
func ClearCart(st store.Store, n notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctl, ok := controllerFor(c, st, n)
		if !ok {
			return
		}

		if err := ctl.Clear(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart/summary
func GetCartSummary(st store.Store, n notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctl, ok := controllerFor(c, st, n)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, ctl.Summary())
	}
}
