package specialistRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/maksim-leskin/api-chik-chik/database"
	"github.com/maksim-leskin/api-chik-chik/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSpecialistRepo implements SpecialistRepository using MongoDB.
type MongoSpecialistRepo struct {
	coll *mongo.Collection
}

// NewMongoSpecialistRepo creates a new instance of SpecialistRepository using MongoDB.
func NewMongoSpecialistRepo() SpecialistRepository {
	// Use the "chikchik" database and the "specialists" collection.
	coll := database.MongoClient.Database("chikchik").Collection("specialists")
	return &MongoSpecialistRepo{coll: coll}
}

func (r *MongoSpecialistRepo) GetAll() ([]models.Specialist, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve specialists: %w", err)
	}
	defer cursor.Close(ctx)
	var specialists []models.Specialist
	for cursor.Next(ctx) {
		var s models.Specialist
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode specialist: %w", err)
		}
		specialists = append(specialists, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return specialists, nil
}

func (r *MongoSpecialistRepo) GetByService(serviceID int) ([]models.Specialist, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// "service" is an array field; a plain equality filter matches membership.
	filter := bson.M{"service": serviceID}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find specialists for service %d: %w", serviceID, err)
	}
	defer cursor.Close(ctx)
	var specialists []models.Specialist
	for cursor.Next(ctx) {
		var s models.Specialist
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode specialist: %w", err)
		}
		specialists = append(specialists, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return specialists, nil
}
