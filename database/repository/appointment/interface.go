package appointmentRepo

import (
	"context"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentOptionRepository reads the treatment templates.
type AppointmentOptionRepository interface {
	// GetAll returns every appointment option.
	GetAll(ctx context.Context) ([]models.AppointmentOption, error)
	// GetByName returns the option with the given name, or nil when absent.
	GetByName(ctx context.Context, name string) (*models.AppointmentOption, error)
	// GetSpecialties returns the {_id, name} projection of all options.
	GetSpecialties(ctx context.Context) ([]models.Specialty, error)
	// Aggregate runs a pipeline over the options collection.
	Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]models.AppointmentOption, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoAppointmentOptionRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentOptionRepo constructs the MongoDB repository.
func NewMongoAppointmentOptionRepo(db *mongo.Database) AppointmentOptionRepository {
	return &mongoAppointmentOptionRepo{
		coll: db.Collection(database.AppointmentOptionsCollection),
	}
}
