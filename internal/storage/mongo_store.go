package storage

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"linkpulse-bot/internal/storage/models"
)

const (
	sharedPostsCollection      = "shared_posts"
	generatedPromptsCollection = "generated_prompts"
)

// MongoStore is a MongoDB-backed Store, selected when MONGODB_URI is
// configured. It keeps the same append-only contract as JSONStore.
type MongoStore struct {
	posts   *mongo.Collection
	prompts *mongo.Collection
}

var _ Store = (*MongoStore)(nil)

// ConnectMongo establishes and pings a MongoDB connection.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	var result bson.M
	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Decode(&result); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	log.Println("Successfully connected and pinged MongoDB.")
	return client, nil
}

// NewMongoStore creates a store over the two log collections.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		posts:   db.Collection(sharedPostsCollection),
		prompts: db.Collection(generatedPromptsCollection),
	}
}

func (s *MongoStore) AppendSharedPost(ctx context.Context, post models.SharedPost) error {
	if _, err := s.posts.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to insert shared post: %w", err)
	}
	return nil
}

func (s *MongoStore) AppendGeneratedPrompt(ctx context.Context, prompt models.GeneratedPrompt) error {
	if _, err := s.prompts.InsertOne(ctx, prompt); err != nil {
		return fmt.Errorf("failed to insert generated prompt: %w", err)
	}
	return nil
}

func (s *MongoStore) SharedPosts(ctx context.Context) []models.SharedPost {
	var posts []models.SharedPost
	if err := findAll(ctx, s.posts, &posts); err != nil {
		log.Printf("[Store] Failed to load shared posts from MongoDB: %v. Treating as empty.", err)
		return nil
	}
	return posts
}

func (s *MongoStore) GeneratedPrompts(ctx context.Context) []models.GeneratedPrompt {
	var prompts []models.GeneratedPrompt
	if err := findAll(ctx, s.prompts, &prompts); err != nil {
		log.Printf("[Store] Failed to load generated prompts from MongoDB: %v. Treating as empty.", err)
		return nil
	}
	return prompts
}

// findAll loads every document in append order. Timestamps are RFC 3339
// strings, so a lexical sort is chronological.
func findAll(ctx context.Context, coll *mongo.Collection, out interface{}) error {
	cursor, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}
