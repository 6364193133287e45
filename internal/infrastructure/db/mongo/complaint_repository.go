package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Thanuja200/Resolve-now/internal/core/domain"
)

const complaintsCollection = "complaints"

// ComplaintRepository implements ports.ComplaintRepository backed by MongoDB.
// Complaints are stored in their domain shape; the bson tags live on
// domain.Complaint.
type ComplaintRepository struct {
	coll *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{coll: db.Collection(complaintsCollection)}
}

func (r *ComplaintRepository) Insert(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *c
	doc.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert complaint: %w", err)
	}
	return &doc, nil
}

// FindAll returns every complaint ordered by created_at descending.
func (r *ComplaintRepository) FindAll(ctx context.Context) ([]*domain.Complaint, error) {
	return r.find(ctx, bson.M{})
}

// FindByOwner returns the owner's complaints ordered by created_at descending.
func (r *ComplaintRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Complaint, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID})
}

func (r *ComplaintRepository) find(ctx context.Context, filter bson.M) ([]*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find complaints: %w", err)
	}
	defer cursor.Close(ctx)

	complaints := []*domain.Complaint{}
	if err := cursor.All(ctx, &complaints); err != nil {
		return nil, fmt.Errorf("decode complaints: %w", err)
	}
	return complaints, nil
}

// EnsureIndexes creates the indexes backing the two list queries.
func (r *ComplaintRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
