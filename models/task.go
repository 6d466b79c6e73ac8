package models

// Task is one entry in a user's to-do list. Ordering inside the stored
// collection is significant: incomplete tasks sit at the front (newest
// first), completed tasks at the back.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}
