package model

type BorrowStats struct {
	CurrentBorrows int     `json:"current_borrows"`
	OverdueBorrows int     `json:"overdue_borrows"`
	TodayBorrows   int     `json:"today_borrows"`
	TodayReturns   int     `json:"today_returns"`
	TotalFines     float64 `json:"total_fines"`
}

type UserStats struct {
	TotalBorrows   int `json:"total_borrows"`
	ActiveBorrows  int `json:"active_borrows"`
	OverdueBorrows int `json:"overdue_borrows"`
}

type SiteStatistics struct {
	TotalUsers     int `json:"total_users"`
	TotalBooks     int `json:"total_books"`
	TotalBorrows   int `json:"total_borrows"`
	ActiveBorrows  int `json:"active_borrows"`
	OverdueBorrows int `json:"overdue_borrows"`
}
