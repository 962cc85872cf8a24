package models

// Machinery represents a bookable piece of farm equipment.
type Machinery struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"` // Daily rate
	IsAvailable bool    `bson:"is_available" json:"is_available"`
}
