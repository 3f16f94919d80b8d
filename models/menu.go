package models

import "time"

// MenuItem is one entry of the restaurant menu catalog.
type MenuItem struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Category    string    `bson:"category" json:"category"` // e.g. "mains", "drinks"
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       Cents     `bson:"price" json:"price"`
	Available   bool      `bson:"available" json:"available"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
