// Package repository provides data access for stack layouts.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/yard-service/internal/domain/model"
)

// StackLayoutConfig represents one version of a yard's stack layout. Replacing
// a layout never mutates history: the current version is deactivated and a new
// document is inserted, so every resolution stays reproducible against the
// layout it ran on.
type StackLayoutConfig struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	YardID    string                 `bson:"yard_id" json:"yard_id"`
	Stacks    []model.Stack          `bson:"stacks" json:"stacks"`
	Active    bool                   `bson:"active" json:"active"`
	Version   int                    `bson:"version" json:"version"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time              `bson:"updated_at" json:"updated_at"`
	UpdatedBy string                 `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	Metadata  map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// StackLayoutsRepository provides methods for stack layout operations.
type StackLayoutsRepository struct {
	collection *mongo.Collection
}

// NewStackLayoutsRepository creates a new stack layouts repository.
func NewStackLayoutsRepository(db *MongoDB) *StackLayoutsRepository {
	return &StackLayoutsRepository{
		collection: db.StackLayouts,
	}
}

// GetActive returns the active stack layout for a yard.
func (r *StackLayoutsRepository) GetActive(ctx context.Context, yardID string) (*StackLayoutConfig, error) {
	var config StackLayoutConfig
	err := r.collection.FindOne(ctx, bson.M{"yard_id": yardID, "active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil // No active layout found
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Replace installs a new active layout for a yard. The previous active
// version is kept with active=false and the new document carries the next
// version number.
func (r *StackLayoutsRepository) Replace(ctx context.Context, yardID string, stacks []model.Stack, updatedBy string) (*StackLayoutConfig, error) {
	version := 1
	current, err := r.GetActive(ctx, yardID)
	if err != nil {
		return nil, err
	}
	if current != nil {
		version = current.Version + 1
	}

	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"yard_id": yardID, "active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := StackLayoutConfig{
		ID:        primitive.NewObjectID(),
		YardID:    yardID,
		Stacks:    stacks,
		Active:    true,
		Version:   version,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		UpdatedBy: updatedBy,
		Metadata:  make(map[string]interface{}),
	}

	_, err = r.collection.InsertOne(ctx, config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// History returns the layout versions of a yard, newest first.
func (r *StackLayoutsRepository) History(ctx context.Context, yardID string, limit int) ([]StackLayoutConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"yard_id": yardID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []StackLayoutConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}
