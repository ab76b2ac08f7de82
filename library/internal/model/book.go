package model

import "time"

type Book struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Author        string    `json:"author" db:"author"`
	ISBN          string    `json:"isbn" db:"isbn"`
	Publisher     *string   `json:"publisher" db:"publisher"`
	PublishDate   *string   `json:"publish_date" db:"publish_date"`
	Category      *string   `json:"category" db:"category"`
	Price         float64   `json:"price" db:"price"`
	StockQuantity int       `json:"stock_quantity" db:"stock_quantity"`
	Description   *string   `json:"description" db:"description"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

type ListBooks struct {
	Records []Book `json:"records"`
	Paging  `json:",inline"`
}

type BookFilter struct {
	// Search matches title, author or isbn.
	Search    string
	Title     string
	Author    string
	Publisher string
	Category  string
}

type BookCreate struct {
	Title         string  `json:"title" validate:"required,max=200"`
	Author        string  `json:"author" validate:"required,max=100"`
	ISBN          string  `json:"isbn" validate:"required,max=20"`
	Publisher     *string `json:"publisher" validate:"omitempty,max=100"`
	PublishDate   *string `json:"publish_date" validate:"omitempty,max=20"`
	Category      *string `json:"category" validate:"omitempty,max=50"`
	Price         float64 `json:"price" validate:"gte=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	Description   *string `json:"description"`
}

// BookUpdate is a partial update, nil fields are left untouched.
type BookUpdate struct {
	Title         *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Author        *string  `json:"author" validate:"omitempty,min=1,max=100"`
	ISBN          *string  `json:"isbn" validate:"omitempty,min=1,max=20"`
	Publisher     *string  `json:"publisher" validate:"omitempty,max=100"`
	PublishDate   *string  `json:"publish_date" validate:"omitempty,max=20"`
	Category      *string  `json:"category" validate:"omitempty,max=50"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	StockQuantity *int     `json:"stock_quantity" validate:"omitempty,gte=0"`
	Description   *string  `json:"description"`
}

func (b BookUpdate) Apply() map[string]interface{} {
	set := make(map[string]interface{})
	if b.Title != nil {
		set["title"] = *b.Title
	}
	if b.Author != nil {
		set["author"] = *b.Author
	}
	if b.ISBN != nil {
		set["isbn"] = *b.ISBN
	}
	if b.Publisher != nil {
		set["publisher"] = *b.Publisher
	}
	if b.PublishDate != nil {
		set["publish_date"] = *b.PublishDate
	}
	if b.Category != nil {
		set["category"] = *b.Category
	}
	if b.Price != nil {
		set["price"] = *b.Price
	}
	if b.StockQuantity != nil {
		set["stock_quantity"] = *b.StockQuantity
	}
	if b.Description != nil {
		set["description"] = *b.Description
	}
	return set
}
