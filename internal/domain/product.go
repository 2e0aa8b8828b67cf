package domain

import "time"

type Product struct {
	ID          string    `bson:"id"`
	CategoryID  string    `bson:"category_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Price       float64   `bson:"price"`
	Image       string    `bson:"image"`
	IsDeleted   bool      `bson:"is_deleted"`
	CreatedAt   time.Time `bson:"created_at"`
}

type Category struct {
	ID        string `bson:"id"`
	Name      string `bson:"name"`
	IsDeleted bool   `bson:"is_deleted"`

	// Counter is the number of live products in the category, filled in by
	// the catalog service for menu rendering. Not persisted.
	Counter int `bson:"-"`
}
