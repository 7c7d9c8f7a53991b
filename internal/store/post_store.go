package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vbonduro/lostfound/internal/domain"
)

// ErrNotFound is returned when no post exists for a given id. An id that is
// not valid ObjectID hex maps to the same error; callers never see a parse
// failure distinct from a lookup miss.
var ErrNotFound = errors.New("post not found")

const serverSelectionTimeout = 20 * time.Second

// Connect builds the process-wide Mongo client. The driver dials lazily and
// pools connections internally, so one client serves all requests for the
// life of the process.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(serverSelectionTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	return client, nil
}

type PostStore struct {
	posts *mongo.Collection
}

func NewPostStore(client *mongo.Client, dbName string) *PostStore {
	return &PostStore{posts: client.Database(dbName).Collection("posts")}
}

// List returns every post sorted newest-first by creation time.
func (s *PostStore) List(ctx context.Context) ([]*domain.Post, error) {
	cur, err := s.posts.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	var posts []*domain.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}

func (s *PostStore) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	post := &domain.Post{}
	err = s.posts.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// Create inserts post with a server-assigned UTC creation time and returns
// the new id as hex.
func (s *PostStore) Create(ctx context.Context, post *domain.Post) (string, error) {
	post.CreatedAt = time.Now().UTC()

	res, err := s.posts.InsertOne(ctx, post)
	if err != nil {
		return "", fmt.Errorf("failed to create post: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}
