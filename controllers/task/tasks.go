package taskControllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swasthiksuvarna/storefront-api/models"
	"github.com/swasthiksuvarna/storefront-api/notify"
	"github.com/swasthiksuvarna/storefront-api/store"
	"github.com/swasthiksuvarna/storefront-api/tasklist"
)

type TaskInput struct {
	Text string `json:"text" binding:"required"`
}

func slotName(userID string) string {
	return fmt.Sprintf("tasks:%s", userID)
}

// controllerFor loads the caller's task list, answering the request itself
// when that fails.
func controllerFor(c *gin.Context, st store.Store, n notify.Notifier) (*tasklist.Controller, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	userID, _ := userIDVal.(string)

	ctl, err := tasklist.NewController(st, slotName(userID), n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tasks"})
		return nil, false
	}
	return ctl, true
}

// GET /user/tasks
func GetTasks(st store.Store, n notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctl, ok := controllerFor(c, st, n)
		if !ok {
			return
		}
		tasks := ctl.Tasks()
		if tasks == nil {
			tasks = []models.Task{}
		}
		c.JSON(http.StatusOK, tasks)
	}
}

// POST /user/tasks
func CreateTask(st store.Store, n notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctl, ok := controllerFor(c, st, n)
		if !ok {
			return
		}

		var input TaskInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Task text is required"})
			return
		}

		task, err := ctl.Add(input.Text)
		if err != nil {
			if errors.Is(err, tasklist.ErrEmptyText) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Task text is required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save task"})
			return
		}

		c.JSON(http.StatusCreated, task)
	}
}

// PUT /user/tasks/:id
func UpdateTask(st store.Store, n notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctl, ok := controllerFor(c, st, n)
		if !ok {
			return
		}

		var input TaskInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Task text is required"})
			return
		}

		if err := ctl.Edit(c.Param("id"), input.Text); err != nil {
			if errors.Is(err, tasklist.ErrEmptyText) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Task text is required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save task"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Task updated", "tasks": ctl.Tasks()})
	}
}

// PATCH /user/tasks/:id/toggle
func ToggleTask(st store.Store, n notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctl, ok := controllerFor(c, st, n)
		if !ok {
			return
		}

		if err := ctl.Toggle(c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save task"})
			return
		}

		c.JSON(http.StatusOK, ctl.Tasks())
	}
}

// DELETE /user/tasks/:id
func DeleteTask(st store.Store, n notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctl, ok := controllerFor(c, st, n)
		if !ok {
			return
		}

		if err := ctl.Delete(c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
	}
}
