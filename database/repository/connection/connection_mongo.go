// File: database/repository/connection/connection_mongo.go
package connectionRepo

import (
	"context"
	"fmt"
	"time"

	"craftlink/database"
	"craftlink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConnectionRepo implements ConnectionRepository using MongoDB.
type MongoConnectionRepo struct {
	coll *mongo.Collection
}

// NewMongoConnectionRepo constructs a new MongoDB ConnectionRepository.
func NewMongoConnectionRepo() ConnectionRepository {
	coll := database.DB().Collection("connections")
	repo := &MongoConnectionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoConnectionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "targetId", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// pairFilter matches the edge between two users in either direction.
func pairFilter(userA, userB string) bson.M {
	return bson.M{"$or": []bson.M{
		{"userId": userA, "targetId": userB},
		{"userId": userB, "targetId": userA},
	}}
}

// Create inserts a new pending connection edge.
func (r *MongoConnectionRepo) Create(conn *models.Connection) error {
	existing, err := r.GetByPair(conn.UserID, conn.TargetID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrConnectionExists
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	conn.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, conn); err != nil {
		return fmt.Errorf("failed to create connection: %w", err)
	}
	return nil
}

// Accept flips a pending edge addressed to userID to accepted.
func (r *MongoConnectionRepo) Accept(connectionID, userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":       connectionID,
		"targetId": userID,
		"status":   models.ConnectionStatusPending,
	}
	update := bson.M{"$set": bson.M{"status": models.ConnectionStatusAccepted}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to accept connection %s: %w", connectionID, err)
	}
	if res.MatchedCount == 0 {
		return ErrConnectionNotFound
	}
	return nil
}

// GetByPair retrieves the edge between two users regardless of direction.
func (r *MongoConnectionRepo) GetByPair(userA, userB string) (*models.Connection, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var conn models.Connection
	if err := r.coll.FindOne(ctx, pairFilter(userA, userB)).Decode(&conn); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch connection: %w", err)
	}
	return &conn, nil
}

// ListForUser retrieves edges touching the user.
func (r *MongoConnectionRepo) ListForUser(userID, status string) ([]models.Connection, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"userId": userID},
		{"targetId": userID},
	}}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	defer cursor.Close(ctx)

	var conns []models.Connection
	if err := cursor.All(ctx, &conns); err != nil {
		return nil, fmt.Errorf("failed to decode connections: %w", err)
	}
	return conns, nil
}

// ConnectedIDs returns the ids of users with an accepted edge to userID.
func (r *MongoConnectionRepo) ConnectedIDs(userID string) ([]string, error) {
	conns, err := r.ListForUser(userID, models.ConnectionStatusAccepted)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(conns))
	for _, c := range conns {
		if c.UserID == userID {
			ids = append(ids, c.TargetID)
		} else {
			ids = append(ids, c.UserID)
		}
	}
	return ids, nil
}
