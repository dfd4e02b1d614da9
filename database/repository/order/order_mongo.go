package orderRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/maksim-leskin/api-chik-chik/database"
	"github.com/maksim-leskin/api-chik-chik/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoOrderRepo implements OrderRepository using MongoDB.
type MongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo creates a new instance of OrderRepository using MongoDB.
func NewMongoOrderRepo() OrderRepository {
	coll := database.MongoClient.Database("chikchik").Collection("orders")
	return &MongoOrderRepo{coll: coll}
}

func (r *MongoOrderRepo) Create(order *models.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}
