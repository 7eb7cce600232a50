package doctor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidDoctor is returned when a doctor lacks a name or specialty.
var ErrInvalidDoctor = errors.New("doctor name and specialty are required")

// DoctorService manages the doctor roster. Every route using it is admin-only.
type DoctorService interface {
	AddDoctor(ctx context.Context, doctor models.Doctor) (*models.InsertResult, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	RemoveDoctor(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) AddDoctor(ctx context.Context, doctor models.Doctor) (*models.InsertResult, error) {
	doctor.Name = strings.TrimSpace(doctor.Name)
	doctor.Specialty = strings.TrimSpace(doctor.Specialty)
	if doctor.Name == "" || doctor.Specialty == "" {
		return nil, ErrInvalidDoctor
	}
	doctor.ID = primitive.NilObjectID

	id, err := s.Repo.Create(ctx, &doctor)
	if err != nil {
		return nil, fmt.Errorf("failed to add doctor: %w", err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (s *DefaultDoctorService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.GetAll(ctx)
}

// RemoveDoctor deletes by id. A missing doctor is not an error; the result
// reports zero deletions.
func (s *DefaultDoctorService) RemoveDoctor(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return s.Repo.Delete(ctx, id)
}
