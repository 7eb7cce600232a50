package userRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new user document.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicateEmail
		}
		return primitive.NilObjectID, fmt.Errorf("failed to create user: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected user id type %T", res.InsertedID)
	}
	user.ID = id
	return id, nil
}

// SetRole updates the role field of a user by id.
func (r *MongoUserRepo) SetRole(ctx context.Context, id primitive.ObjectID, role models.Role, upsert bool) (*models.UpdateResult, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var update bson.M
	if role == models.RoleRegular {
		update = bson.M{"$unset": bson.M{"role": ""}}
	} else {
		update = bson.M{"$set": bson.M{"role": string(role)}}
	}
	opts := options.Update().SetUpsert(upsert)

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to update role of user %s: %w", id.Hex(), err)
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}
