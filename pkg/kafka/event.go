package kafka

import (
	"strconv"
	"time"
)

type EventType string

const (
	EventBorrowed EventType = "borrowed"
	EventReturned EventType = "returned"
	EventRenewed  EventType = "renewed"
)

// BorrowEvent is published after a borrow state change commits.
type BorrowEvent struct {
	Type       EventType `json:"type"`
	BorrowID   int64     `json:"borrow_id"`
	UserID     int64     `json:"user_id"`
	BookID     int64     `json:"book_id"`
	DueDate    time.Time `json:"due_date"`
	FineAmount float64   `json:"fine_amount"`
	Timestamp  time.Time `json:"timestamp"`
}

// Key partitions events by borrow record so consumers see them in order.
func (e BorrowEvent) Key() string {
	return strconv.FormatInt(e.BorrowID, 10)
}
