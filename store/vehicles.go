package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/OishiSharmeen04/TravelEase-server/models"
)

// Vehicles wraps the vehicles collection.
type Vehicles struct {
	coll *mongo.Collection
}

func NewVehicles(db *mongo.Database, name string) *Vehicles {
	return &Vehicles{coll: db.Collection(name)}
}

func (s *Vehicles) All(ctx context.Context) ([]models.Vehicle, error) {
	return s.find(ctx, bson.M{}, nil)
}

// Latest returns at most limit vehicles, newest createdAt first.
func (s *Vehicles) Latest(ctx context.Context, limit int64) ([]models.Vehicle, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return s.find(ctx, bson.M{}, opts)
}

// ByID returns (nil, nil) when no document matches.
func (s *Vehicles) ByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (s *Vehicles) ByOwner(ctx context.Context, email string) ([]models.Vehicle, error) {
	return s.find(ctx, bson.M{"userEmail": email}, nil)
}

func (s *Vehicles) Insert(ctx context.Context, vehicle *models.Vehicle) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, vehicle)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *Vehicles) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error) {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (s *Vehicles) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (s *Vehicles) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Vehicle, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = s.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = s.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	vehicles := []models.Vehicle{}
	for cursor.Next(ctx) {
		var vehicle models.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			continue
		}
		vehicles = append(vehicles, vehicle)
	}
	return vehicles, cursor.Err()
}
