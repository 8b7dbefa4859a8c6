package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/OishiSharmeen04/TravelEase-server/models"
)

type Users struct {
	coll *mongo.Collection
}

func NewUsers(db *mongo.Database, name string) *Users {
	return &Users{coll: db.Collection(name)}
}

// ByEmail returns (nil, nil) when no account exists for the email.
func (s *Users) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Users) Insert(ctx context.Context, user *models.User) error {
	_, err := s.coll.InsertOne(ctx, user)
	return err
}
