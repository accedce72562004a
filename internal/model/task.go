package model

type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Statuses lists every accepted status in display order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

type Task struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Description *string `json:"description" db:"description"`
	Status      Status  `json:"status" db:"status"`
	DueDate     *Date   `json:"dueDate" db:"due_date"`
}
