package models

import "time"

// BookingItem is a single line item on a booking.
type BookingItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
}

// DeliveryAddress is the delivery destination for booked machinery.
// SMS bookings only carry a free-text city/locality.
type DeliveryAddress struct {
	City string `bson:"city" json:"city"`
}

// Booking represents a persisted machinery reservation. Bookings created
// over SMS always start as status "pending" with payment "pending";
// later transitions belong to the main booking workflow, not this core.
type Booking struct {
	ID              string          `bson:"id" json:"id"`
	CustomerID      string          `bson:"customer_id" json:"customer_id"`
	MachineryID     string          `bson:"machinery_id" json:"machinery_id"`
	Items           []BookingItem   `bson:"items" json:"items"`
	TotalAmount     float64         `bson:"total_amount" json:"total_amount"`
	StartDate       time.Time       `bson:"start_date" json:"start_date"`
	EndDate         time.Time       `bson:"end_date" json:"end_date"`
	Duration        int             `bson:"duration" json:"duration"` // Rental days
	DeliveryAddress DeliveryAddress `bson:"delivery_address" json:"delivery_address"`
	Status          string          `bson:"status" json:"status"`
	PaymentStatus   string          `bson:"payment_status" json:"payment_status"`
	CreatedAt       time.Time       `bson:"created_at" json:"created_at"`
}
