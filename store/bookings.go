package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/OishiSharmeen04/TravelEase-server/models"
)

// Bookings wraps the bookings collection. Documents are schemaless; see
// models.Booking.
type Bookings struct {
	coll *mongo.Collection
}

func NewBookings(db *mongo.Database, name string) *Bookings {
	return &Bookings{coll: db.Collection(name)}
}

func (s *Bookings) Insert(ctx context.Context, booking models.Booking) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *Bookings) ByOwner(ctx context.Context, email string) ([]models.Booking, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	for cursor.Next(ctx) {
		var booking models.Booking
		if err := cursor.Decode(&booking); err != nil {
			continue
		}
		bookings = append(bookings, booking)
	}
	return bookings, cursor.Err()
}
