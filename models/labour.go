package models

// Labour represents a labour-pool entry: a crew or contractor offering
// one or more skills.
type Labour struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Skills      []string `bson:"skills" json:"skills"`
	IsAvailable bool     `bson:"is_available" json:"is_available"`
}
