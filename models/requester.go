package models

import "time"

// Requester is the party placing a booking over SMS, keyed by phone number.
// Records are created lazily on first contact with placeholder identity
// fields and are never updated by the SMS core afterwards.
type Requester struct {
	ID          string    `bson:"id" json:"id"`
	PhoneNumber string    `bson:"phone_number" json:"phone_number"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Password    string    `bson:"password" json:"-"` // "sms-disabled" marker, never a real credential
	Role        string    `bson:"role" json:"role"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
