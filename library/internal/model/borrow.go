package model

import "time"

type BorrowStatus string

const (
	BorrowStatusBorrowed BorrowStatus = "borrowed"
	BorrowStatusReturned BorrowStatus = "returned"
	BorrowStatusOverdue  BorrowStatus = "overdue"
	BorrowStatusRenewed  BorrowStatus = "renewed"
)

func (s BorrowStatus) Valid() bool {
	switch s {
	case BorrowStatusBorrowed, BorrowStatusReturned, BorrowStatusOverdue, BorrowStatusRenewed:
		return true
	}
	return false
}

// CanTransition reports whether a record in status s may move to status to.
// Renewal keeps a record borrowed; returned is terminal.
func (s BorrowStatus) CanTransition(to BorrowStatus) bool {
	if s != BorrowStatusBorrowed {
		return false
	}
	return to == BorrowStatusReturned || to == BorrowStatusBorrowed
}

type Borrow struct {
	ID           int64        `json:"id" db:"id"`
	UserID       int64        `json:"user_id" db:"user_id"`
	BookID       int64        `json:"book_id" db:"book_id"`
	BorrowDate   time.Time    `json:"borrow_date" db:"borrow_date"`
	DueDate      time.Time    `json:"due_date" db:"due_date"`
	ReturnDate   *time.Time   `json:"return_date" db:"return_date"`
	Status       BorrowStatus `json:"status" db:"status"`
	RenewalCount int          `json:"renewal_count" db:"renewal_count"`
	FineAmount   float64      `json:"fine_amount" db:"fine_amount"`
	Notes        *string      `json:"notes" db:"notes"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

func (b Borrow) IsOverdue(now time.Time) bool {
	return b.Status == BorrowStatusBorrowed && now.After(b.DueDate)
}

// BorrowDetails is a borrow record joined with its user and book.
type BorrowDetails struct {
	ID           int64        `json:"id" db:"id"`
	UserID       int64        `json:"user_id" db:"user_id"`
	UserName     string       `json:"user_name" db:"user_name"`
	UserEmail    string       `json:"user_email" db:"user_email"`
	BookID       int64        `json:"book_id" db:"book_id"`
	BookTitle    string       `json:"book_title" db:"book_title"`
	BookAuthor   string       `json:"book_author" db:"book_author"`
	BookISBN     string       `json:"book_isbn" db:"book_isbn"`
	BorrowDate   time.Time    `json:"borrow_date" db:"borrow_date"`
	DueDate      time.Time    `json:"due_date" db:"due_date"`
	ReturnDate   *time.Time   `json:"return_date" db:"return_date"`
	Status       BorrowStatus `json:"status" db:"status"`
	RenewalCount int          `json:"renewal_count" db:"renewal_count"`
	FineAmount   float64      `json:"fine_amount" db:"fine_amount"`
	Notes        *string      `json:"notes" db:"notes"`
	DaysOverdue  *int         `json:"days_overdue" db:"-"`
}

// Derive fills the read-time fields.
func (b *BorrowDetails) Derive(now time.Time) {
	b.DaysOverdue = nil
	if b.Status == BorrowStatusBorrowed && now.After(b.DueDate) {
		days := DaysBetween(b.DueDate, now)
		b.DaysOverdue = &days
	}
}

type ListBorrows struct {
	Records []BorrowDetails `json:"records"`
	Paging  `json:",inline"`
}

type BorrowFilter struct {
	UserID      *int64
	BookID      *int64
	Status      BorrowStatus
	Search      string
	OverdueOnly bool
	// Now is the reference time for OverdueOnly.
	Now time.Time
}

type OverdueBorrow struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	Phone        *string   `json:"phone" db:"phone"`
	BookID       int64     `json:"book_id" db:"book_id"`
	BookTitle    string    `json:"book_title" db:"book_title"`
	BookAuthor   string    `json:"book_author" db:"book_author"`
	BorrowDate   time.Time `json:"borrow_date" db:"borrow_date"`
	DueDate      time.Time `json:"due_date" db:"due_date"`
	RenewalCount int       `json:"renewal_count" db:"renewal_count"`
	DaysOverdue  int       `json:"days_overdue" db:"-"`
}

type BorrowRequest struct {
	UserID     *int64  `json:"user_id" validate:"omitempty,gt=0"`
	BookID     int64   `json:"book_id" validate:"required,gt=0"`
	BorrowDays int     `json:"borrow_days" validate:"omitempty,min=1,max=365"`
	Notes      *string `json:"notes" validate:"omitempty,max=500"`
}

type ReturnRequest struct {
	Notes *string `json:"notes" validate:"omitempty,max=500"`
}

type RenewRequest struct {
	RenewalDays int     `json:"renewal_days" validate:"omitempty,min=1,max=365"`
	Notes       *string `json:"notes" validate:"omitempty,max=500"`
}

type BorrowCreated struct {
	Message  string    `json:"message"`
	BorrowID int64     `json:"borrow_id"`
	DueDate  time.Time `json:"due_date"`
}

type ReturnResult struct {
	Message    string    `json:"message"`
	ReturnDate time.Time `json:"return_date"`
	FineAmount float64   `json:"fine_amount"`
}

type RenewResult struct {
	Message      string    `json:"message"`
	NewDueDate   time.Time `json:"new_due_date"`
	RenewalCount int       `json:"renewal_count"`
}

// BorrowPolicy holds the lending rules.
type BorrowPolicy struct {
	MaxActive   int     `envconfig:"BORROW_MAX_ACTIVE" default:"5"`
	MaxRenewals int     `envconfig:"BORROW_MAX_RENEWALS" default:"2"`
	FinePerDay  float64 `envconfig:"BORROW_FINE_PER_DAY" default:"1.0"`
	DefaultDays int     `envconfig:"BORROW_DEFAULT_DAYS" default:"30"`
	TrackStock  bool    `envconfig:"LIBRARY_TRACK_STOCK" default:"false"`
}

func DefaultBorrowPolicy() BorrowPolicy {
	return BorrowPolicy{
		MaxActive:   5,
		MaxRenewals: 2,
		FinePerDay:  1.0,
		DefaultDays: 30,
	}
}

const day = 24 * time.Hour

// DaysBetween counts whole days elapsed from from to to, partial days truncated.
func DaysBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from) / day)
}

// AddDays shifts t by n whole 24h days.
func AddDays(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * day)
}
