package userRepo

import (
	"context"
	"errors"
	"testing"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestGetByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := func(mt *mtest.T) string { return mt.Coll.Database().Name() + "." + mt.Coll.Name() }

	mt.Run("found admin", func(mt *mtest.T) {
		repo := &MongoUserRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "admin@x.com"},
			{Key: "role", Value: "admin"},
		}))

		u, err := repo.GetByEmail(context.Background(), "admin@x.com")
		if err != nil {
			mt.Fatalf("GetByEmail: %v", err)
		}
		if u == nil || !u.IsAdmin() {
			mt.Fatalf("expected admin user, got %+v", u)
		}
	})

	mt.Run("missing user", func(mt *mtest.T) {
		repo := &MongoUserRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		u, err := repo.GetByEmail(context.Background(), "ghost@x.com")
		if err != nil || u != nil {
			mt.Fatalf("expected (nil, nil), got (%v, %v)", u, err)
		}
	})
}

func TestCreateDuplicateEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate", func(mt *mtest.T) {
		repo := &MongoUserRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))

		_, err := repo.Create(context.Background(), &models.User{Email: "a@x.com"})
		if !errors.Is(err, ErrDuplicateEmail) {
			mt.Fatalf("expected ErrDuplicateEmail, got %v", err)
		}
	})
}

func TestSetRole(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reports matched and modified counts", func(mt *mtest.T) {
		repo := &MongoUserRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := repo.SetRole(context.Background(), primitive.NewObjectID(), models.RoleAdmin, true)
		if err != nil {
			mt.Fatalf("SetRole: %v", err)
		}
		if !res.Acknowledged || res.MatchedCount != 1 || res.ModifiedCount != 1 {
			mt.Fatalf("unexpected result: %+v", res)
		}
	})
}
