package repository

import (
	"context"
	"errors"
	"fmt"

	"bistro_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines operations for user documents.
type UserRepository interface {
	FindAll(ctx context.Context) ([]model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Insert(ctx context.Context, user *model.User) (*mongo.InsertOneResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new UserRepository backed by the given collection.
func NewUserRepository(coll *mongo.Collection) UserRepository {
	return &userRepository{coll: coll}
}

// FindAll retrieves every user document.
func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// FindByEmail retrieves a user by email. Email is the natural key; absence
// is not an error for this method's contract, callers handle nil.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// Insert stores a new user document.
func (r *userRepository) Insert(ctx context.Context, user *model.User) (*mongo.InsertOneResult, error) {
	result, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return result, nil
}

// DeleteByID removes a user document by id.
func (r *userRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return result, nil
}

// PromoteToAdmin sets role=admin on the user with the given id.
func (r *userRepository) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"role": model.RoleAdmin}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to promote user: %w", err)
	}
	return result, nil
}
