package service

import (
	"errors"
	"fmt"

	"course-cluster-backend/internal/database/models"
	apperrors "course-cluster-backend/internal/errors"
	"course-cluster-backend/internal/logger"
	"course-cluster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ObjectService provides business logic for the furniture catalog
type ObjectService struct {
	repo      repository.ObjectRepositoryInterface
	validator *validator.Validate
}

// Ensure ObjectService implements ObjectServiceInterface
var _ ObjectServiceInterface = (*ObjectService)(nil)

// NewObjectService creates a new ObjectService
func NewObjectService(repo repository.ObjectRepositoryInterface, validator *validator.Validate) *ObjectService {
	return &ObjectService{
		repo:      repo,
		validator: validator,
	}
}

// CreateObjectRequest represents the request to add an object to the catalog
type CreateObjectRequest struct {
	Name   string  `json:"name" validate:"required,max=200" example:"Desk"`
	Width  float64 `json:"width" validate:"gt=0" example:"4"`
	Height float64 `json:"height" validate:"gt=0" example:"2"`
	Color  *string `json:"color" example:"#D2691E"`
}

// UpdateObjectRequest replaces all four attributes of a catalog object.
// An omitted color clears the stored color.
type UpdateObjectRequest struct {
	Name   string  `json:"name" validate:"required,max=200" example:"Desk"`
	Width  float64 `json:"width" validate:"gt=0" example:"4"`
	Height float64 `json:"height" validate:"gt=0" example:"2"`
	Color  *string `json:"color" example:"#D2691E"`
}

// ObjectResponse represents a catalog object in API responses
type ObjectResponse struct {
	ID     uint    `json:"objectId"`
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Color  *string `json:"color"`
}

// ListObjects returns the whole catalog ordered by id
func (s *ObjectService) ListObjects() ([]ObjectResponse, error) {
	objects, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get objects: %w", err)
	}

	responses := make([]ObjectResponse, len(objects))
	for i := range objects {
		responses[i] = toObjectResponse(&objects[i])
	}
	return responses, nil
}

// GetObject retrieves a catalog object by id
func (s *ObjectService) GetObject(id uint) (*ObjectResponse, error) {
	object, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to get object: %w", err)
	}

	resp := toObjectResponse(object)
	return &resp, nil
}

// CreateObject adds a new object to the catalog
func (s *ObjectService) CreateObject(req *CreateObjectRequest) (*ObjectResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	object := &models.RoomObject{
		Name:   req.Name,
		Width:  req.Width,
		Height: req.Height,
		Color:  req.Color,
	}
	if err := s.repo.Create(object); err != nil {
		return nil, fmt.Errorf("failed to create object: %w", err)
	}

	logger.New().WithField("object_id", object.ID).Info("object created")

	resp := toObjectResponse(object)
	return &resp, nil
}

// UpdateObject overwrites name, width, height and color of a catalog object
func (s *ObjectService) UpdateObject(id uint, req *UpdateObjectRequest) (*ObjectResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	object, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to get object: %w", err)
	}

	object.Name = req.Name
	object.Width = req.Width
	object.Height = req.Height
	object.Color = req.Color

	if err := s.repo.Update(object); err != nil {
		return nil, fmt.Errorf("failed to update object: %w", err)
	}

	logger.New().WithField("object_id", object.ID).Info("object updated")

	resp := toObjectResponse(object)
	return &resp, nil
}

// DeleteObject removes a catalog object together with its placements.
func (s *ObjectService) DeleteObject(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		logger.New().WithField("object_id", id).WithError(err).Error("object delete failed")
		return fmt.Errorf("failed to delete object: %w", err)
	}

	logger.New().WithField("object_id", id).Info("object deleted")
	return nil
}

func toObjectResponse(object *models.RoomObject) ObjectResponse {
	return ObjectResponse{
		ID:     object.ID,
		Name:   object.Name,
		Width:  object.Width,
		Height: object.Height,
		Color:  object.Color,
	}
}
