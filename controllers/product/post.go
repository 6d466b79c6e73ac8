package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/swasthiksuvarna/storefront-api/models"
	"gorm.io/gorm"
)

// CreateProduct creates a new product from a multipart form with an image
// upload.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		title := c.PostForm("title")
		priceStr := c.PostForm("price")
		if title == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		// Optional fields
		description := c.PostForm("description")
		categoryIDStr := c.PostForm("category_id")

		var categoryID uint
		if categoryIDStr != "" {
			id64, parseErr := strconv.ParseUint(categoryIDStr, 10, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, uint(id64)).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			categoryID = category.ID
		}

		// Image: uploaded file, or a pre-uploaded URL from /files/upload
		imageURL := c.PostForm("image")
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err = saveUpload(c, file, "products")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
				return
			}
		}
		if imageURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
			return
		}

		newProduct := models.Product{
			Title:       title,
			Price:       price,
			Description: description,
			Image:       imageURL,
			CategoryID:  categoryID,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}
