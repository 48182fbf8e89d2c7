package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"loopcart/models"
)

// MongoUserStore implements UserStore on a MongoDB users collection.
type MongoUserStore struct {
	users *mongo.Collection
}

// NewMongoUserStore returns a store backed by the given database's "users"
// collection.
func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{users: db.Collection("users")}
}

func (s *MongoUserStore) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Wishlist == nil {
		user.Wishlist = []string{}
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		// The unique email index arbitrates concurrent duplicate signups.
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	err = s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

func (s *MongoUserStore) All(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (s *MongoUserStore) AddToWishlist(ctx context.Context, id, productID string) ([]string, error) {
	return s.updateWishlist(ctx, id, bson.M{"$addToSet": bson.M{"wishlist": productID}})
}

func (s *MongoUserStore) RemoveFromWishlist(ctx context.Context, id, productID string) ([]string, error) {
	return s.updateWishlist(ctx, id, bson.M{"$pull": bson.M{"wishlist": productID}})
}

// updateWishlist applies a single atomic update and returns the post-image
// wishlist. Single-document atomicity makes concurrent edits safe without a
// version field.
func (s *MongoUserStore) updateWishlist(ctx context.Context, id string, update bson.M) ([]string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	update["$set"] = bson.M{"updated_at": time.Now().UTC()}

	var user models.User
	err = s.users.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update wishlist: %w", err)
	}

	if user.Wishlist == nil {
		return []string{}, nil
	}
	return user.Wishlist, nil
}
