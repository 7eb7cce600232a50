package doctorRepo

import (
	"context"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DoctorRepository manages the doctor roster.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) (primitive.ObjectID, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs the MongoDB doctor repository.
func NewMongoDoctorRepo(db *mongo.Database) DoctorRepository {
	return &mongoDoctorRepo{coll: db.Collection(database.DoctorsCollection)}
}
