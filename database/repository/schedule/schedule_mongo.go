package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maksim-leskin/api-chik-chik/database"
	"github.com/maksim-leskin/api-chik-chik/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const rebuildMarkerKey = "scheduleRebuild"

// rebuildMarker is the freshness marker document. Only its updatedAt
// timestamp matters; the content carries no other meaning.
type rebuildMarker struct {
	Key       string    `bson:"key"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
	meta *mongo.Collection
}

// NewMongoScheduleRepo creates a new instance of ScheduleRepository using MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database("chikchik")
	return &MongoScheduleRepo{
		coll: db.Collection("schedules"),
		meta: db.Collection("meta"),
	}
}

func (r *MongoScheduleRepo) GetBySpecialist(id int) (*models.SpecialistSchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var sched models.SpecialistSchedule
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&sched); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch schedule for specialist %d: %w", id, err)
	}
	return &sched, nil
}

func (r *MongoScheduleRepo) ReplaceAll(schedules []models.SpecialistSchedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ids := make([]int, 0, len(schedules))
	writes := make([]mongo.WriteModel, 0, len(schedules)+1)
	for _, s := range schedules {
		ids = append(ids, s.ID)
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"id": s.ID}).
			SetReplacement(s).
			SetUpsert(true))
	}
	// Drop documents for specialists no longer in the catalog.
	writes = append(writes, mongo.NewDeleteManyModel().
		SetFilter(bson.M{"id": bson.M{"$nin": ids}}))

	if _, err := r.coll.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true)); err != nil {
		return fmt.Errorf("failed to replace schedules: %w", err)
	}
	return nil
}

func (r *MongoScheduleRepo) LastRebuildAt() (time.Time, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var m rebuildMarker
	filter := bson.M{"key": rebuildMarkerKey}
	if err := r.meta.FindOne(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Never rebuilt; reported as the zero time, not an error.
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to read rebuild marker: %w", err)
	}
	return m.UpdatedAt, nil
}

func (r *MongoScheduleRepo) TouchRebuildMarker() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"key": rebuildMarkerKey}
	update := bson.M{"$set": bson.M{"updatedAt": time.Now()}}
	if _, err := r.meta.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to touch rebuild marker: %w", err)
	}
	return nil
}
