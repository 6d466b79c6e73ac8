package tasklist

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/swasthiksuvarna/storefront-api/models"
	"github.com/swasthiksuvarna/storefront-api/notify"
	"github.com/swasthiksuvarna/storefront-api/store"
)

// ErrEmptyText rejects tasks whose text is empty after trimming.
var ErrEmptyText = errors.New("task text must not be empty")

// Controller owns the ordered task collection for one slot. Incomplete
// tasks sit at the front (newest first); completing a task moves it to the
// back, un-completing moves it back to the front.
//
// Every mutation builds the next snapshot, persists it, and only then
// replaces the in-memory one, so a failed write leaves the collection
// untouched.
type Controller struct {
	store    store.Store
	slot     string
	notifier notify.Notifier
	tasks    []models.Task
}

func NewController(st store.Store, slot string, n notify.Notifier) (*Controller, error) {
	c := &Controller{store: st, slot: slot, notifier: n}
	if err := st.Load(slot, &c.tasks); err != nil {
		return nil, err
	}
	return c, nil
}

// Tasks returns the current snapshot, front to back.
func (c *Controller) Tasks() []models.Task {
	return c.tasks
}

// Add validates the text, prepends a fresh task and persists.
func (c *Controller) Add(text string) (models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Task{}, ErrEmptyText
	}

	task := models.Task{ID: uuid.NewString(), Text: text}
	next := append([]models.Task{task}, c.tasks...)
	if err := c.store.Save(c.slot, next); err != nil {
		return models.Task{}, err
	}
	c.tasks = next

	c.notifier.Notify("Task added successfully", notify.Success)
	return task, nil
}

// Edit replaces the task's text, keeping its position and completion flag.
// Unknown ids are a silent no-op.
func (c *Controller) Edit(id, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}

	i := c.index(id)
	if i < 0 {
		return nil
	}

	next := append([]models.Task(nil), c.tasks...)
	next[i].Text = text
	if err := c.store.Save(c.slot, next); err != nil {
		return err
	}
	c.tasks = next

	c.notifier.Notify("Task updated successfully", notify.Success)
	return nil
}

// Delete removes the task unconditionally. Unknown ids are a silent no-op.
func (c *Controller) Delete(id string) error {
	i := c.index(id)
	if i < 0 {
		return nil
	}

	next := append(append([]models.Task{}, c.tasks[:i]...), c.tasks[i+1:]...)
	if err := c.store.Save(c.slot, next); err != nil {
		return err
	}
	c.tasks = next

	c.notifier.Notify("Task deleted successfully", notify.Success)
	return nil
}

// Toggle flips the completion flag and relocates the task: to the back when
// it just completed, to the front when it just un-completed.
func (c *Controller) Toggle(id string) error {
	i := c.index(id)
	if i < 0 {
		return nil
	}

	task := c.tasks[i]
	task.Completed = !task.Completed

	rest := append(append([]models.Task{}, c.tasks[:i]...), c.tasks[i+1:]...)
	var next []models.Task
	if task.Completed {
		next = append(rest, task)
	} else {
		next = append([]models.Task{task}, rest...)
	}

	if err := c.store.Save(c.slot, next); err != nil {
		return err
	}
	c.tasks = next
	return nil
}

func (c *Controller) index(id string) int {
	for i, t := range c.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
