package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vehicle is a rental listing. UserEmail and CreatedAt are set once at
// creation; the update handler never touches them.
type Vehicle struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	VehicleName  string             `bson:"vehicleName" json:"vehicleName"`
	Owner        string             `bson:"owner" json:"owner"`
	Category     string             `bson:"category" json:"category"`
	PricePerDay  float64            `bson:"pricePerDay" json:"pricePerDay"`
	Location     string             `bson:"location" json:"location"`
	Availability string             `bson:"availability" json:"availability"`
	Description  string             `bson:"description" json:"description"`
	CoverImage   string             `bson:"coverImage" json:"coverImage"`
	UserEmail    string             `bson:"userEmail" json:"userEmail"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
